package booking

import (
	"RepairDesk/entity"
	"RepairDesk/impl/core"
	"RepairDesk/internal/lib/api/cont"
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type StatusRequest struct {
	Status entity.BookingStatus `json:"status"`
}

func SetStatus(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trackingID := chi.URLParam(r, "id")
		logger := log.With(
			sl.Module("http.handlers.booking"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("tracking_id", trackingID),
		)
		if staff := cont.GetStaff(r.Context()); staff != nil {
			logger = logger.With(slog.String("staff", staff.Username))
		}

		var req StatusRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := handler.SetBookingStatus(r.Context(), trackingID, req.Status); err != nil {
			logger.Error("set booking status", sl.Err(err))
			if errors.Is(err, core.ErrInvalidRequest) {
				render.Status(r, http.StatusBadRequest)
			} else {
				render.Status(r, http.StatusNotFound)
			}
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		logger.Info("booking status updated", slog.String("status", string(req.Status)))

		render.JSON(w, r, response.Ok(req))
	}
}
