package server

import (
	"context"
	"net"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/pratik-anurag/feluda-examples/example"
	"github.com/pratik-anurag/feluda-examples/versions"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Server struct {
	logger     *zap.Logger
	catalog    *versions.Catalog
	httpServer *http.Server
	listener   net.Listener
}

type Hello struct {
	Message    string `json:"message"`
	GinVersion string `json:"gin_version"`
	GoVersion  string `json:"go_version"`
}

// New binds address right away so a bad address fails at startup.
func New(address string, catalog *versions.Catalog, logger *zap.Logger) (*Server, error) {
	logger.Info("Creating new server", zap.String("address", address))
	l, err := net.Listen("tcp", address)
	if err != nil {
		return nil, errors.Wrapf(err, "error trying to listen on %s", address)
	}
	s := &Server{
		logger:   logger,
		catalog:  catalog,
		listener: l,
	}
	s.httpServer = &http.Server{Handler: s.Handler()}
	return s, nil
}

// Addr is the bound address, useful when listening on port 0.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), s.logRequests)
	engine.GET("/", s.hello)
	return engine
}

func (s *Server) hello(c *gin.Context) {
	goVersion := s.catalog.GoVersion()
	if goVersion == versions.Unknown {
		goVersion = runtime.Version()
	}
	c.JSON(http.StatusOK, Hello{
		Message:    example.PythonTitle,
		GinVersion: gin.Version,
		GoVersion:  goVersion,
	})
}

func (s *Server) logRequests(c *gin.Context) {
	c.Next()
	s.logger.Debug("Handled request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()))
}

// ListenAndServe blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("Serving", zap.String("address", s.listener.Addr().String()))
	err := s.httpServer.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Close() error {
	err := s.httpServer.Close()
	if err != nil {
		s.logger.Error("Failed to close server", zap.Error(err))
	}
	// Serve closes the listener itself; this only matters when Serve never ran.
	if lerr := s.listener.Close(); lerr != nil && !errors.Is(lerr, net.ErrClosed) {
		err = multierr.Append(err, lerr)
	}
	return err
}
