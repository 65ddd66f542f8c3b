package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prooflab/resolute/internal/api/middleware"
	"github.com/prooflab/resolute/internal/domain"
	"github.com/prooflab/resolute/internal/service"
)

type RunHandler struct {
	svc *service.ProverService
}

func NewRunHandler(svc *service.ProverService) *RunHandler {
	return &RunHandler{svc: svc}
}

// Create starts a saturation run over the theory named in the URL and
// blocks until it finishes, the round bound trips, or the client goes
// away. Cancellation propagates into the loop through the request
// context.
func (h *RunHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspace := middleware.WorkspaceFromContext(r.Context())
	if workspace == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	theoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid theory id")
		return
	}

	run, err := h.svc.Run(r.Context(), theoryID, workspace.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTheoryNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to run theory")
		}
		return
	}

	writeJSON(w, http.StatusCreated, run)
}

func (h *RunHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	workspace := middleware.WorkspaceFromContext(r.Context())
	if workspace == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := h.svc.GetRun(r.Context(), id, workspace.ID)
	if err != nil {
		if errors.Is(err, service.ErrRunNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get run")
		return
	}

	writeJSON(w, http.StatusOK, run)
}

func (h *RunHandler) ListByTheory(w http.ResponseWriter, r *http.Request) {
	workspace := middleware.WorkspaceFromContext(r.Context())
	if workspace == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	theoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid theory id")
		return
	}

	runs, err := h.svc.ListRuns(r.Context(), theoryID, workspace.ID)
	if err != nil {
		if errors.Is(err, service.ErrTheoryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []domain.Run{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}
