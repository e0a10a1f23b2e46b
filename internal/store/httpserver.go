package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// httpServer wraps the gin engine with the same Start/Shutdown lifecycle
// the rest of the system's network-facing components expose.
type httpServer struct {
	server *http.Server
	logger *slog.Logger
}

func newHTTPServer(port uint16, api *httpAPI, logger *slog.Logger) *httpServer {
	engine := gin.New()
	engine.Use(requestLogger(logger), recovery(logger))

	api.register(engine)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	return &httpServer{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: engine,
		},
		logger: logger,
	}
}

func (s *httpServer) Start() error {
	s.logger.Info("starting http server", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *httpServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
