package api

import (
	"RepairDesk/internal/config"
	"RepairDesk/internal/http-server/handlers/booking"
	"RepairDesk/internal/http-server/handlers/catalog"
	"RepairDesk/internal/http-server/handlers/errors"
	"RepairDesk/internal/http-server/handlers/key"
	"RepairDesk/internal/http-server/handlers/sale"
	"RepairDesk/internal/http-server/handlers/workflow"
	"RepairDesk/internal/http-server/middleware/authenticate"
	"RepairDesk/internal/lib/sl"
	"RepairDesk/internal/ws"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const requestTimeout = 30 * time.Second

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	ws.Authenticator
	booking.Core
	sale.Core
	catalog.Core
	workflow.Core
	key.Core
}

// NewRouter builds the routes. Customer-facing endpoints are public;
// listing records, changing status and issuing keys need a staff key.
func NewRouter(log *slog.Logger, handler Handler, hub *ws.Hub) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(v1 chi.Router) {
		if hub != nil {
			v1.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
				ws.ServeWs(hub, handler, log, w, r)
			})
		}

		v1.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))
			r.Use(render.SetContentType(render.ContentTypeJSON))

			r.Post("/bookings", booking.Create(log, handler))
			r.Post("/sales", sale.Create(log, handler))
			r.Route("/catalog", func(c chi.Router) {
				c.Get("/services", catalog.Services(log, handler))
				c.Get("/slots", catalog.TimeSlots(log, handler))
			})

			r.Route("/workflow", func(wf chi.Router) {
				wf.Get("/", workflow.List(log, handler))
				wf.Get("/catalog/services", workflow.Services(log, handler))
				wf.Get("/catalog/slots", workflow.TimeSlots(log, handler))
				wf.Post("/{type}", workflow.Start(log, handler))
				wf.Route("/session/{id}", func(s chi.Router) {
					s.Get("/", workflow.Get(log, handler))
					s.Delete("/", workflow.End(log, handler))
					s.Patch("/fields", workflow.SetFields(log, handler))
					s.Post("/next", workflow.Next(log, handler))
					s.Post("/back", workflow.Back(log, handler))
					s.Post("/submit", workflow.Submit(log, handler))
				})
			})
		})

		v1.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))
			r.Use(render.SetContentType(render.ContentTypeJSON))
			r.Use(authenticate.New(log, handler))

			r.Get("/bookings", booking.List(log, handler))
			r.Post("/bookings/{id}/status", booking.SetStatus(log, handler))
			r.Get("/sales", sale.List(log, handler))
			r.Post("/key/new", key.Generate(log, handler))
		})
	})

	return router
}

// New serves the API until the listener fails.
func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:           NewRouter(log, handler, hub),
		ErrorLog:          httpLog,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
