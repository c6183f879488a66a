package booking

import (
	"RepairDesk/entity"
	"RepairDesk/impl/core"
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

func Create(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.booking")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.BookingRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		receipt, err := handler.CreateBooking(r.Context(), req)
		if err != nil {
			logger.Error("create booking", sl.Err(err))
			if errors.Is(err, core.ErrInvalidRequest) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Booking failed"))
			return
		}
		logger.With(slog.String("tracking_id", receipt.TrackingID)).Debug("booking created")

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(receipt))
	}
}
