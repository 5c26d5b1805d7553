package loans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/dto"
	loanservice "github.com/cecyt19/biblioteca/internal/service/loanservice"
	"github.com/cecyt19/biblioteca/pkg/utils"
)

type Service interface {
	Checkout(ctx context.Context, req loanservice.CheckoutRequest) (*domain.Loan, error)
	ListOpen(ctx context.Context) ([]domain.Loan, error)
	Return(ctx context.Context, m loanservice.Matcher) error
	Restart(ctx context.Context, loanID int) (*domain.Loan, error)
	UpcomingReturns(ctx context.Context, limit int) ([]loanservice.UpcomingReturn, error)
	DelinquentDays(loan *domain.Loan) int
}

type LoanHandler struct {
	loanService Service
	fineRate    float64
}

func New(loanService Service, fineRate float64) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		fineRate:    fineRate,
	}
}

func toDTO(loan *domain.Loan) dto.LoanResponseDTO {
	return dto.LoanResponseDTO{
		ID:       loan.ID,
		Kind:     loan.BorrowerKind,
		Name:     loan.BorrowerName,
		Borrower: loan.BorrowerID,
		Group:    loan.Group,
		Email:    loan.Email,
		Book: dto.BookRefDTO{
			Title: loan.Title,
			ISBN:  loan.Code,
		},
		StartDate: loan.StartDate.Format("2006-01-02"),
		DueDate:   loan.DueDate.Format("2006-01-02"),
		Status:    loan.Status,
		CreatedAt: loan.CreatedAt.Format(time.RFC3339),
	}
}

// Checkout godoc
//
//	@Summary		Register a checkout
//	@Description	Creates a loan due N business days out and decrements the item's availability.
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		dto.CheckoutRequestDTO	true	"Borrower and item"
//	@Success		201			{object}	dto.LoanResponseDTO
//	@Failure		400			{object}	utils.Response	"Missing borrower kind/name or item title"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/loans [post]
func (h *LoanHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	loan, err := h.loanService.Checkout(r.Context(), loanservice.CheckoutRequest{
		BorrowerKind: req.Kind,
		BorrowerID:   req.ID,
		BorrowerName: req.Name,
		Group:        req.Group,
		Email:        req.Email,
		Title:        req.Title,
		Code:         req.ISBN,
		LoanDays:     req.LoanDays,
	})
	if err != nil {
		if errors.Is(err, loanservice.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(loan))
}

// List godoc
//
//	@Summary	List open loans with their effective state
//	@Tags		Loans
//	@Produce	json
//	@Success	200	{array}		dto.LoanResponseDTO
//	@Failure	500	{object}	utils.Response
//	@Router		/api/loans [get]
func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanService.ListOpen(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LoanResponseDTO, 0, len(loans))
	for i := range loans {
		response = append(response, toDTO(&loans[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PendingReturns lists open loans annotated with delinquency and the fine a
// late return would currently owe, for the returns table.
func (h *LoanHandler) PendingReturns(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanService.ListOpen(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PendingReturnDTO, 0, len(loans))
	for i := range loans {
		daysLate := h.loanService.DelinquentDays(&loans[i])
		item := dto.PendingReturnDTO{
			LoanResponseDTO: toDTO(&loans[i]),
			DaysLate:        daysLate,
		}
		if daysLate > 0 {
			item.FineAmount = float64(daysLate) * h.fineRate
		}
		response = append(response, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Return godoc
//
//	@Summary		Return a loan
//	@Description	Deletes the loan, restores availability and settles any pending fine.
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			return	body		dto.ReturnRequestDTO	true	"Loan matcher"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"No matching open loan"
//	@Failure		500		{object}	utils.Response
//	@Router			/api/loans/return [post]
func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req dto.ReturnRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	matcher := loanservice.Matcher{
		LoanID:     req.LoanID,
		Code:       req.ISBN,
		Title:      req.Title,
		BorrowerID: req.Borrower,
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid start date")
			return
		}
		matcher.StartDate = &start
	}

	if err := h.loanService.Return(r.Context(), matcher); err != nil {
		if errors.Is(err, loanservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "returned"})
}

func (h *LoanHandler) Restart(w http.ResponseWriter, r *http.Request) {
	var req dto.ReturnRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LoanID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Loan id is required")
		return
	}

	loan, err := h.loanService.Restart(r.Context(), req.LoanID)
	if err != nil {
		if errors.Is(err, loanservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(loan))
}

func (h *LoanHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	items, err := h.loanService.UpcomingReturns(r.Context(), 10)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if items == nil {
		items = []loanservice.UpcomingReturn{}
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}
