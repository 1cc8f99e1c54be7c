package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	devstatus "github.com/alts-client/devstatus/pkg"
	"github.com/alts-client/devstatus/pkg/handlers"
	"github.com/alts-client/devstatus/pkg/middleware"
)

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 20 * time.Second
	writeTimeout      = 2 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

var ErrAlreadyStarted = errors.New("HTTP server already started")

type BindError struct {
	Port int
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("unable to bind to port %d: %s", e.Port, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Server owns the HTTP listener. The embedding application decides when it
// starts and stops.
type Server struct {
	cfg     *devstatus.Config
	port    int
	handler http.Handler

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	done     chan struct{}
}

func New(cfg *devstatus.Config, port int) *Server {
	s := &Server{cfg: cfg, port: port}
	s.handler = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	// Temp workaround for easy to access io.Writer.
	defaultLogOutput := log.Default().Writer()

	healthLogOutput := io.Discard
	if !devstatus.Production() {
		healthLogOutput = defaultLogOutput
	}
	logHandler := gorillaHandlers.LoggingHandler

	statusChain := alice.New(
		alice.Constructor(middleware.RequestID()),
		alice.Constructor(middleware.Recovery(s.cfg)),
		alice.Constructor(middleware.Timeout(devstatus.RequestTimeout())),
		alice.Constructor(middleware.Audit(s.cfg)),
	).Then(handlers.DeviceStatus(s.cfg))

	notFound := logHandler(defaultLogOutput, handlers.NotFound())

	r := mux.NewRouter()
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	if s.cfg.ServerEnv != nil && s.cfg.ServerEnv.HealthCheck {
		r.Handle("/healthcheck", logHandler(healthLogOutput, handlers.Healthcheck(s.cfg, s.Running))).Methods("GET")
	}
	r.Handle("/get_device_status", logHandler(defaultLogOutput, statusChain)).Methods("POST")

	return r
}

// Start binds the listener and serves requests in the background. A port
// that cannot be bound is reported as a *BindError.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return ErrAlreadyStarted
	}

	l, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(s.port)))
	if err != nil {
		return &BindError{Port: s.port, Err: err}
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		ErrorLog:          zap.NewStdLog(s.cfg.Logger.Desugar()),
	}
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.cfg.Logger.Errorf("HTTP server stopped unexpectedly: %s", err)
		}
	}()

	s.server, s.listener, s.done = srv, l, done
	s.cfg.Logger.Infof("HTTP server started on %s", l.Addr())

	return nil
}

// Stop shuts the server down. It does nothing when the server is not
// running.
func (s *Server) Stop() error {
	s.mu.Lock()
	srv, done := s.server, s.done
	s.server, s.listener, s.done = nil, nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	if err != nil {
		_ = srv.Close()
	}
	<-done

	if err != nil {
		return fmt.Errorf("unable to stop HTTP server: %w", err)
	}
	s.cfg.Logger.Info("HTTP server stopped")

	return nil
}

func (s *Server) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listener != nil
}

// Addr returns the address the listener is bound to, or an empty string
// when the server is not running.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
