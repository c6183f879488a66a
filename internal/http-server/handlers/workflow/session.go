package workflow

import (
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"RepairDesk/workflow"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

const mod = "http.handlers.workflow"

func requestLogger(log *slog.Logger, r *http.Request) *slog.Logger {
	return log.With(
		sl.Module(mod),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// loadSession resolves {id}; it writes the error response itself.
func loadSession(logger *slog.Logger, handler Core, w http.ResponseWriter, r *http.Request) (*workflow.Session, bool) {
	id := chi.URLParam(r, "id")
	session, err := handler.GetSession(id)
	if err != nil {
		logger.Debug("session lookup", slog.String("session_id", id), sl.Err(err))
		if errors.Is(err, workflow.ErrSessionNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Session not found or expired"))
			return nil, false
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Session unavailable"))
		return nil, false
	}
	return session, true
}

func Get(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(requestLogger(log, r), handler, w, r)
		if !ok {
			return
		}
		render.JSON(w, r, response.Ok(session.View()))
	}
}

// End unmounts the session; its form and result are discarded.
func End(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		handler.EndSession(id)
		requestLogger(log, r).Debug("session ended", slog.String("session_id", id))
		render.JSON(w, r, response.Ok(nil))
	}
}
