package workflow

import (
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type FieldsRequest struct {
	Fields map[string]any `json:"fields"`
}

// SetFields merges values into the form. Only keys some step collects are
// accepted; the values themselves are validated on Next.
func SetFields(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(log, r)
		session, ok := loadSession(logger, handler, w, r)
		if !ok {
			return
		}

		var req FieldsRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if err := session.SetFields(req.Fields); err != nil {
			logger.Debug("fields refused", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.JSON(w, r, response.Ok(session.View()))
	}
}

// Next advances one step. A refused advance is reported with 422 and the
// unchanged session view so the client can show what is missing.
func Next(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(requestLogger(log, r), handler, w, r)
		if !ok {
			return
		}

		if !session.Advance() {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Response{
				Success: false,
				Message: "Step is incomplete",
				Data:    session.View(),
			})
			return
		}

		render.JSON(w, r, response.Ok(session.View()))
	}
}

func Back(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(requestLogger(log, r), handler, w, r)
		if !ok {
			return
		}
		session.Retreat()
		render.JSON(w, r, response.Ok(session.View()))
	}
}
