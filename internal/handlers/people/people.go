package people

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/service/personservice"
	"github.com/cecyt19/biblioteca/pkg/utils"
)

type Service interface {
	ListStudents(ctx context.Context, page, pageSize int) ([]personservice.Student, int, error)
	ListStaff(ctx context.Context) ([]personservice.Staff, error)
	RegisterStudent(ctx context.Context, payload domain.Document) error
	RegisterStaff(ctx context.Context, payload domain.Document) error
	FindStudent(ctx context.Context, boleta string) (*personservice.Student, error)
	FindStaff(ctx context.Context, employeeNo string) (*personservice.Staff, error)
}

type PersonHandler struct {
	personService Service
}

func New(personService Service) *PersonHandler {
	return &PersonHandler{personService: personService}
}

type studentListResponse struct {
	Students []personservice.Student `json:"students"`
	Total    int                     `json:"total"`
	Page     int                     `json:"page"`
}

// ListStudents godoc
//
//	@Summary	List registered students, paged
//	@Tags		People
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	studentListResponse
//	@Failure	500		{object}	utils.Response
//	@Router		/api/students [get]
func (h *PersonHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	students, total, err := h.personService.ListStudents(r.Context(), page, pageSize)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if page < 1 {
		page = 1
	}
	if students == nil {
		students = []personservice.Student{}
	}
	utils.RespondWithJSON(w, http.StatusOK, studentListResponse{Students: students, Total: total, Page: page})
}

func (h *PersonHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.personService.ListStaff(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if staff == nil {
		staff = []personservice.Staff{}
	}
	utils.RespondWithJSON(w, http.StatusOK, staff)
}

// RegisterStudent godoc
//
//	@Summary		Register a student
//	@Description	Accepts spreadsheet-shaped records; fields are normalized on write.
//	@Tags			People
//	@Accept			json
//	@Produce		json
//	@Param			student	body		map[string]interface{}	true	"Student record"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.Response
//	@Failure		500		{object}	utils.Response
//	@Router			/api/students [post]
func (h *PersonHandler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || len(doc) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if err := h.personService.RegisterStudent(r.Context(), doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "registered"})
}

func (h *PersonHandler) RegisterStaff(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || len(doc) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if err := h.personService.RegisterStaff(r.Context(), doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "registered"})
}

// LookupStudent godoc
//
//	@Summary	Look up a student by boleta
//	@Tags		People
//	@Produce	json
//	@Param		boleta	query		string	true	"Student id"
//	@Success	200		{object}	personservice.Student
//	@Failure	400		{object}	utils.Response	"Missing boleta"
//	@Failure	404		{object}	utils.Response	"Not registered"
//	@Failure	500		{object}	utils.Response
//	@Router		/api/students/lookup [get]
func (h *PersonHandler) LookupStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.personService.FindStudent(r.Context(), r.URL.Query().Get("boleta"))
	if err != nil {
		if errors.Is(err, personservice.ErrIdentifierRequired) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if student == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Student not registered")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, student)
}

func (h *PersonHandler) LookupStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.personService.FindStaff(r.Context(), r.URL.Query().Get("employee_no"))
	if err != nil {
		if errors.Is(err, personservice.ErrIdentifierRequired) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if staff == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Staff member not registered")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, staff)
}
