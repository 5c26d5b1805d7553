package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/dto"
	"github.com/cecyt19/biblioteca/internal/service/siteservice"
	"github.com/cecyt19/biblioteca/pkg/utils"
)

type Service interface {
	CheckIn(ctx context.Context, req siteservice.CheckInRequest) (*domain.SiteEntry, error)
	List(ctx context.Context) ([]domain.SiteEntry, error)
	Delete(ctx context.Context, id int) error
	RestartCounter(ctx context.Context, id int) error
	AddObservation(ctx context.Context, kind, borrowerID, text string) error
}

type SiteHandler struct {
	siteService Service
}

func New(siteService Service) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// CheckIn godoc
//
//	@Summary		Record a site check-in
//	@Description	Logs a visit; the shift is inferred from the schedule load when absent.
//	@Tags			Site
//	@Accept			json
//	@Produce		json
//	@Param			visit	body		dto.CheckInRequestDTO	true	"Visitor"
//	@Success		201		{object}	domain.SiteEntry
//	@Failure		400		{object}	utils.Response
//	@Failure		500		{object}	utils.Response
//	@Router			/api/site/checkin [post]
func (h *SiteHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckInRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	entry, err := h.siteService.CheckIn(r.Context(), siteservice.CheckInRequest{
		Kind:       req.Kind,
		Name:       req.Name,
		BorrowerID: req.ID,
		Group:      req.Group,
		Load:       req.Load,
		Email:      req.Email,
		Shift:      req.Shift,
		Occupation: req.Occupation,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, entry)
}

// List godoc
//
//	@Summary	List site check-ins, newest first
//	@Tags		Site
//	@Produce	json
//	@Success	200	{array}		domain.SiteEntry
//	@Failure	500	{object}	utils.Response
//	@Router		/api/site [get]
func (h *SiteHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.siteService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if entries == nil {
		entries = []domain.SiteEntry{}
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

func (h *SiteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.SiteActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Entry id is required")
		return
	}

	if err := h.siteService.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, siteservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "deleted"})
}

func (h *SiteHandler) Restart(w http.ResponseWriter, r *http.Request) {
	var req dto.SiteActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Entry id is required")
		return
	}

	if err := h.siteService.RestartCounter(r.Context(), req.ID); err != nil {
		if errors.Is(err, siteservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "restarted"})
}

// AddObservation godoc
//
//	@Summary		Append an observation to a visitor's latest check-in
//	@Tags			Site
//	@Accept			json
//	@Produce		json
//	@Param			observation	body		dto.ObservationRequestDTO	true	"Observation"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Empty observation text"
//	@Failure		404			{object}	utils.Response	"No check-in for that visitor"
//	@Failure		500			{object}	utils.Response
//	@Router			/api/site/observation [post]
func (h *SiteHandler) AddObservation(w http.ResponseWriter, r *http.Request) {
	var req dto.ObservationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if err := h.siteService.AddObservation(r.Context(), req.Kind, req.ID, req.Observation); err != nil {
		switch {
		case errors.Is(err, siteservice.ErrObservationRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, siteservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "observation added"})
}
