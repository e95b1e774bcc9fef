package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/audit"
	"github.com/solarbi/savvy-planner/internal/auth"
	"github.com/solarbi/savvy-planner/internal/config"
	handlers "github.com/solarbi/savvy-planner/internal/handlers/v1"
	"github.com/solarbi/savvy-planner/internal/jobs"
	"github.com/solarbi/savvy-planner/internal/service"
	"github.com/solarbi/savvy-planner/internal/storage"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/pkg/metrics"
	"github.com/solarbi/savvy-planner/pkg/middleware"
	"github.com/solarbi/savvy-planner/pkg/requestid"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	listener net.Listener
	queue    jobs.TaskQueue
	objects  storage.ObjectStore
}

// New returns a new instance of a savvy api server.
func New(
	cfg *config.Config,
	store store.Store,
	listener net.Listener,
	queue jobs.TaskQueue,
	objects storage.ObjectStore,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		listener: listener,
		queue:    queue,
		objects:  objects,
	}
}

type healthReply struct {
	Status string `json:"status"`
}

func (h healthReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// Handler builds the router with every view mounted. /health is served
// without authentication.
func (s *Server) Handler(metricMiddleware *metrics.Middleware) (http.Handler, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed loading swagger spec: %w", err)
	}
	// Skip server name validation
	swagger.Servers = nil

	authenticator, err := auth.NewAuthenticator(s.cfg.Service.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	recorder := audit.NewRecorder(s.store)
	h := handlers.NewServiceHandler(
		s.cfg,
		service.NewAssumptionService(s.store, s.queue, s.objects, recorder, s.cfg.Service.UploadFolder, s.cfg.Service.UploadChunkSize),
		service.NewSimulationService(s.store, recorder),
		service.NewSimulationLogService(s.store),
	)

	router := chi.NewRouter()
	router.Use(metricMiddleware.Handler)
	// an empty origin list makes cors allow any origin, so cross origin
	// requests stay disabled until origins are configured.
	if origins := s.cfg.Service.CorsAllowedOrigins; len(origins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", requestid.Header},
			ExposedHeaders:   []string{requestid.Header},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	router.Use(
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, healthReply{Status: "ok"})
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticator.Authenticator)
		h.Routes(r, swagger)
	})

	return router, nil
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	metricMiddleware := metrics.NewMiddleware("api_server", s.cfg.Service.LatencyBuckets)
	metricMiddleware.MustRegisterDefault()

	router, err := s.Handler(metricMiddleware)
	if err != nil {
		return err
	}
	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
