package fines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/dto"
	"github.com/cecyt19/biblioteca/internal/service/fineservice"
	"github.com/cecyt19/biblioteca/pkg/utils"
)

type Service interface {
	ListPending(ctx context.Context) ([]domain.Fine, error)
	Settle(ctx context.Context, fineID int) error
}

type FineHandler struct {
	fineService Service
}

func New(fineService Service) *FineHandler {
	return &FineHandler{fineService: fineService}
}

// List godoc
//
//	@Summary		List pending fines
//	@Description	Returns pending fines with accrual recomputed as of today.
//	@Tags			Fines
//	@Produce		json
//	@Success		200	{array}		dto.FineResponseDTO
//	@Failure		500	{object}	utils.Response
//	@Router			/api/fines [get]
func (h *FineHandler) List(w http.ResponseWriter, r *http.Request) {
	fines, err := h.fineService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.FineResponseDTO, 0, len(fines))
	for _, f := range fines {
		response = append(response, dto.FineResponseDTO{
			ID:             f.ID,
			LoanID:         f.LoanID,
			Borrower:       f.BorrowerID,
			Name:           f.BorrowerName,
			Email:          f.Email,
			Title:          f.ItemTitle,
			DueDate:        f.DueDate.Format("2006-01-02"),
			DelinquentDays: f.DelinquentDays,
			Amount:         f.Amount,
			Status:         f.Status,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Settle godoc
//
//	@Summary		Settle a fine
//	@Description	Marks the fine paid and closes out the loan it belongs to.
//	@Tags			Fines
//	@Accept			json
//	@Produce		json
//	@Param			fine	body		dto.SettleFineRequestDTO	true	"Fine id"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Fine not found"
//	@Failure		500		{object}	utils.Response
//	@Router			/api/fines/settle [post]
func (h *FineHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleFineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Fine id is required")
		return
	}

	if err := h.fineService.Settle(r.Context(), req.ID); err != nil {
		if errors.Is(err, fineservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "settled"})
}
