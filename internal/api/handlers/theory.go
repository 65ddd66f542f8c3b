package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prooflab/resolute/internal/api/middleware"
	"github.com/prooflab/resolute/internal/domain"
	"github.com/prooflab/resolute/internal/service"
)

type TheoryHandler struct {
	svc *service.TheoryService
}

func NewTheoryHandler(svc *service.TheoryService) *TheoryHandler {
	return &TheoryHandler{svc: svc}
}

type createTheoryRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

func (h *TheoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspace := middleware.WorkspaceFromContext(r.Context())
	if workspace == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createTheoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	theory := &domain.Theory{
		WorkspaceID: workspace.ID,
		Name:        req.Name,
		Source:      req.Source,
	}
	if err := h.svc.Create(r.Context(), theory); err != nil {
		switch {
		case errors.Is(err, service.ErrTheoryNameMissing),
			errors.Is(err, service.ErrTheorySourceMissing),
			errors.Is(err, service.ErrTheorySourceInvalid),
			errors.Is(err, service.ErrTheoryEmpty):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create theory")
		}
		return
	}

	writeJSON(w, http.StatusCreated, theory)
}

func (h *TheoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	workspace := middleware.WorkspaceFromContext(r.Context())
	if workspace == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid theory id")
		return
	}

	theory, err := h.svc.GetByID(r.Context(), id, workspace.ID)
	if err != nil {
		if errors.Is(err, service.ErrTheoryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get theory")
		return
	}

	writeJSON(w, http.StatusOK, theory)
}

func (h *TheoryHandler) List(w http.ResponseWriter, r *http.Request) {
	workspace := middleware.WorkspaceFromContext(r.Context())
	if workspace == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	theories, err := h.svc.List(r.Context(), workspace.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list theories")
		return
	}
	if theories == nil {
		theories = []domain.Theory{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"theories": theories})
}

func (h *TheoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspace := middleware.WorkspaceFromContext(r.Context())
	if workspace == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid theory id")
		return
	}

	if err := h.svc.Delete(r.Context(), id, workspace.ID); err != nil {
		if errors.Is(err, service.ErrTheoryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete theory")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
