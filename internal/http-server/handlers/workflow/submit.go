package workflow

import (
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"RepairDesk/workflow"
	"errors"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// Submit sends the finished form. A duplicate submit while one is in
// flight, or after confirmation, returns the current view unchanged.
func Submit(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(log, r)
		session, ok := loadSession(logger, handler, w, r)
		if !ok {
			return
		}
		logger = logger.With(slog.String("session_id", session.ID))

		result, err := session.Submit(r.Context())
		switch {
		case errors.Is(err, workflow.ErrValidation):
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Response{
				Success: false,
				Message: "Form is incomplete",
				Data:    session.View(),
			})
			return
		case errors.Is(err, workflow.ErrSubmissionFailed):
			logger.Warn("submission failed", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Response{
				Success: false,
				Message: "Submission failed, please try again",
				Data:    session.View(),
			})
			return
		case err != nil:
			logger.Error("submit", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Submission failed"))
			return
		}

		if result != nil {
			logger.Info("submission confirmed", slog.String("tracking_id", result.TrackingID))
		}
		render.JSON(w, r, response.Ok(session.View()))
	}
}
