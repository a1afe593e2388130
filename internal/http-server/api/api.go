package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"AtsAssistant/internal/config"
	"AtsAssistant/internal/http-server/handlers/chat"
	"AtsAssistant/internal/http-server/handlers/errors"
	"AtsAssistant/internal/http-server/handlers/favorites"
	"AtsAssistant/internal/http-server/handlers/school"
	"AtsAssistant/internal/http-server/middleware/session"
	"AtsAssistant/internal/http-server/middleware/timeout"
	"AtsAssistant/internal/lib/api/response"
	"AtsAssistant/internal/lib/sl"
	"AtsAssistant/internal/ws"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	school.Core
	favorites.Core
	chat.Core
}

// Metrics is implemented by the prometheus collector set.
type Metrics interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

func NewRouter(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub, metrics Metrics) http.Handler {
	router := chi.NewRouter()
	router.Use(timeout.Timeout(conf.Listen.Timeout))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	if metrics != nil {
		router.Use(metrics.Middleware)
	}

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Ok("ok"))
	})
	if metrics != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(session.New(log))

		if hub != nil {
			r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
				ws.ServeWs(hub, log, w, req)
			})
		}

		r.Route("/api/v1", func(v1 chi.Router) {
			v1.Use(render.SetContentType(render.ContentTypeJSON))

			v1.Route("/schools", func(r chi.Router) {
				r.Get("/", school.ListSchools(log, handler))
				r.Get("/facets", school.Facets(log, handler))
				r.Post("/select", school.SelectSchool(log, handler))
				r.Get("/{id}", school.GetSchool(log, handler))
			})
			v1.Route("/favorites", func(r chi.Router) {
				r.Get("/", favorites.List(log, handler))
				r.Post("/toggle", favorites.Toggle(log, handler))
				r.Delete("/", favorites.Clear(log, handler))
			})
			v1.Route("/chat", func(r chi.Router) {
				r.Post("/", chat.Send(log, handler))
				r.Get("/history", chat.History(log, handler))
				r.Post("/reset", chat.Reset(log, handler))
				r.Post("/clear-cache", chat.ClearCache(log, handler))
			})
		})
	})

	return router
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub, metrics Metrics) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  NewRouter(conf, log, handler, hub, metrics),
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
