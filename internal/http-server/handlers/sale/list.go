package sale

import (
	"RepairDesk/internal/lib/api/query"
	"RepairDesk/internal/lib/api/response"
	"RepairDesk/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.sale"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		quotes, err := handler.ListSaleQuotes(r.Context(), query.Limit(r, 50))
		if err != nil {
			logger.Error("list sale quotes", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list sale quotes"))
			return
		}

		render.JSON(w, r, response.Ok(quotes))
	}
}
