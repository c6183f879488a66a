package key

import (
	"RepairDesk/internal/lib/api/cont"
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type Core interface {
	GenerateApiKey(username string) (string, error)
}

type Request struct {
	Username string `json:"username"`
}

// Generate issues a staff key. Only the admin may call it.
func Generate(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.key"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		staff := cont.GetStaff(r.Context())
		if staff == nil || staff.Username != "admin" {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("Admin key required"))
			return
		}

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil || req.Username == "" {
			logger.Error("invalid key request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Username is required"))
			return
		}

		apiKey, err := handler.GenerateApiKey(req.Username)
		if err != nil {
			logger.Error("generate api key", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to generate key"))
			return
		}
		logger.With(slog.String("username", req.Username), sl.Secret("key", apiKey)).Info("staff key issued")

		render.JSON(w, r, response.Ok(map[string]string{"username": req.Username, "key": apiKey}))
	}
}
