package workflow

import (
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// Services lists bookable repair services. When the remote catalog is down
// the built-in defaults are returned with degraded set.
func Services(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listing, err := handler.CatalogServices(r.Context())
		if err != nil {
			requestLogger(log, r).Error("catalog services", sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Catalog unavailable"))
			return
		}
		render.JSON(w, r, response.Ok(listing))
	}
}

func TimeSlots(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listing, err := handler.CatalogTimeSlots(r.Context())
		if err != nil {
			requestLogger(log, r).Error("catalog time slots", sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Catalog unavailable"))
			return
		}
		render.JSON(w, r, response.Ok(listing))
	}
}
