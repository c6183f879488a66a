package workflow

import (
	"RepairDesk/entity"
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"RepairDesk/workflow"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"io"
	"log/slog"
	"net/http"
)

type StartRequest struct {
	Profile *entity.Profile `json:"profile,omitempty"`
}

// Start mounts a new session, optionally pre-filling contact fields
// from the caller's profile.
func Start(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workflowID := workflow.WorkflowID(chi.URLParam(r, "type"))
		logger := requestLogger(log, r).With(slog.String("workflow_id", string(workflowID)))

		var req StartRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		session, err := handler.StartWorkflow(workflowID, req.Profile)
		if err != nil {
			logger.Error("start workflow", sl.Err(err))
			if errors.Is(err, workflow.ErrUnknownWorkflow) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Unknown workflow"))
				return
			}
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to start workflow"))
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(session.View()))
	}
}

func List(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Ok(handler.Workflows()))
	}
}
