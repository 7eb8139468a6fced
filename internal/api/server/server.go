package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/base-org/forcer/internal/api/handlers"
	"github.com/base-org/forcer/internal/logging"
	"go.uber.org/zap"
)

// Config ... Server configuration options
type Config struct {
	Host            string
	Port            int
	KeepAlive       int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// Server ... Server representation struct
type Server struct {
	Cfg        *Config
	serverHTTP *http.Server
}

// New ... Initializer. The returned stop function gracefully drains in-flight
// requests, which may include force inclusions waiting on confirmation
func New(ctx context.Context, cfg *Config, apiHandlers handlers.Handlers) (*Server, func(), error) {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, nil, fmt.Errorf("invalid server port %d", cfg.Port)
	}

	restServer := initializeServer(cfg, apiHandlers)
	go spawnServer(restServer)

	stop := func() {
		logging.WithContext(ctx).Info("starting to shutdown REST API HTTP server")

		ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := restServer.serverHTTP.Shutdown(ctx); err != nil {
			logging.WithContext(ctx).Error("failed to shutdown REST API HTTP server", zap.Error(err))
		}
	}

	return restServer, stop, nil
}

// Addr ... Returns the listen address
func (sv *Server) Addr() string {
	return sv.serverHTTP.Addr
}

// spawnServer ... Starts a counterparty listen and serve API routine
func spawnServer(server *Server) {
	logging.NoContext().Info("Starting REST API HTTP server",
		zap.String("address", server.serverHTTP.Addr))

	if err := server.serverHTTP.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logging.NoContext().Error("failed to run REST API HTTP server",
			zap.String("address", server.serverHTTP.Addr), zap.Error(err))
	}
}

// initializeServer ... Initializes server struct object
func initializeServer(config *Config, handler http.Handler) *Server {
	return &Server{
		Cfg: config,
		serverHTTP: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler:      handler,
			ReadTimeout:  seconds(config.ReadTimeout, 10),
			WriteTimeout: seconds(config.WriteTimeout, 10),
			IdleTimeout:  seconds(config.KeepAlive, 60),
		},
	}
}

func seconds(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}
