package booking

import (
	"RepairDesk/internal/lib/api/query"
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

const defaultListLimit = 50

func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.booking"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		limit := query.Limit(r, defaultListLimit)
		bookings, err := handler.ListBookings(r.Context(), limit)
		if err != nil {
			logger.Error("list bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list bookings"))
			return
		}

		render.JSON(w, r, response.Ok(bookings))
	}
}
