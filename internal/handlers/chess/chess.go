package chess

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/dto"
	"github.com/cecyt19/biblioteca/internal/service/chessservice"
	"github.com/cecyt19/biblioteca/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.ChessSession, error)
	FindActive(ctx context.Context, userID, kind string) (*domain.ChessSession, error)
	Start(ctx context.Context, userID, name, kind string) (*domain.ChessSession, error)
	Finish(ctx context.Context, userID, kind string) error
	Restart(ctx context.Context, userID, kind string) error
	Delete(ctx context.Context, id int) error
}

type ChessHandler struct {
	chessService Service
}

func New(chessService Service) *ChessHandler {
	return &ChessHandler{chessService: chessService}
}

func (h *ChessHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.chessService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if sessions == nil {
		sessions = []domain.ChessSession{}
	}
	utils.RespondWithJSON(w, http.StatusOK, sessions)
}

func (h *ChessHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	session, err := h.chessService.FindActive(r.Context(), q.Get("user_id"), q.Get("kind"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if session == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No active session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, session)
}

// Start godoc
//
//	@Summary		Start a chess clock session
//	@Description	Opens a running clock session for the player, keyed by user and kind.
//	@Tags			Chess
//	@Accept			json
//	@Produce		json
//	@Param			session	body		dto.ChessActionRequestDTO	true	"Player"
//	@Success		201		{object}	domain.ChessSession
//	@Failure		400		{object}	utils.Response
//	@Failure		500		{object}	utils.Response
//	@Router			/api/chess/start [post]
func (h *ChessHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.ChessActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	session, err := h.chessService.Start(r.Context(), req.UserID, req.Name, req.Kind)
	if err != nil {
		if errors.Is(err, chessservice.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, session)
}

func (h *ChessHandler) Finish(w http.ResponseWriter, r *http.Request) {
	var req dto.ChessActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if err := h.chessService.Finish(r.Context(), req.UserID, req.Kind); err != nil {
		if errors.Is(err, chessservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "finished"})
}

func (h *ChessHandler) Restart(w http.ResponseWriter, r *http.Request) {
	var req dto.ChessActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if err := h.chessService.Restart(r.Context(), req.UserID, req.Kind); err != nil {
		if errors.Is(err, chessservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "restarted"})
}

func (h *ChessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.ChessActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Session id is required")
		return
	}

	if err := h.chessService.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, chessservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "deleted"})
}
