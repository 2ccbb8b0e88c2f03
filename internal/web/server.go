package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/kent-titlemap/internal/matcher"
	"github.com/kent-titlemap/internal/web/handlers"
	"github.com/kent-titlemap/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *Config
	engine     *matcher.Engine
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server around a ready matching engine
func NewServer(config *Config, engine *matcher.Engine) *Server {
	server := &Server{
		config: config,
		engine: engine,
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	// Convert config for handlers (to avoid import cycle)
	handlerConfig := &handlers.Config{Mode: s.config.Matching.Mode}
	handlerConfig.Features.ExportEnabled = s.config.Features.ExportEnabled
	handlerConfig.Features.SuggestEnabled = s.config.Features.SuggestEnabled

	matchHandler := &handlers.MatchHandler{Engine: s.engine, Config: handlerConfig}
	exportHandler := &handlers.ExportHandler{Engine: s.engine, Config: handlerConfig}
	metaHandler := &handlers.MetaHandler{Engine: s.engine, Config: handlerConfig}
	suggestHandler := &handlers.SuggestHandler{Engine: s.engine, Config: handlerConfig}

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/match", matchHandler.Match).Methods("POST")
	api.HandleFunc("/meta", metaHandler.Meta).Methods("GET")
	api.HandleFunc("/health", metaHandler.Health).Methods("GET")

	if s.config.Features.ExportEnabled {
		api.HandleFunc("/match/export", exportHandler.Export).Methods("POST")
	}
	if s.config.Features.SuggestEnabled {
		api.HandleFunc("/suggest", suggestHandler.Suggest).Methods("GET")
	}

	// Static form page
	staticDir := "internal/web/static"
	if _, err := os.Stat(staticDir); err == nil {
		s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir + "/")))
	}

	s.router.Use(middleware.CORS(s.config.Server.CORSOrigin))
	s.router.Use(middleware.RequestLogging())
}

// Router exposes the configured router for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the web server and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("starting server")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-stop
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
