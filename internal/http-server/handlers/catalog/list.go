package catalog

import (
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

func Services(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := handler.ListServices(r.Context())
		if err != nil {
			log.With(
				sl.Module("http.handlers.catalog"),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			).Error("list services", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list services"))
			return
		}
		render.JSON(w, r, response.Ok(services))
	}
}

func TimeSlots(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slots, err := handler.ListTimeSlots(r.Context())
		if err != nil {
			log.With(
				sl.Module("http.handlers.catalog"),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			).Error("list time slots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list time slots"))
			return
		}
		render.JSON(w, r, response.Ok(slots))
	}
}
