package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"

	reuseport "github.com/kavu/go_reuseport"
	"go.uber.org/zap"
)

// Server serves the playground router.
type Server struct {
	addr      string
	reuseport bool

	http *http.Server

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}

	log *zap.Logger
}

func NewServer(options Options) *Server {
	log := options.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &Server{
		addr:      net.JoinHostPort(options.Host, strconv.Itoa(options.Port)),
		reuseport: options.Reuseport,
		http: &http.Server{
			Handler: NewRouter(options.Debug, log.Named("router")),
		},
		done: make(chan struct{}),
		log:  log,
	}
}

// Start begins listening and returns once the listener is bound. Requests
// are served on a separate goroutine until Shutdown is called, ctx becomes
// the parent of every request context.
func (s *Server) Start(ctx context.Context) error {
	listener, err := Listen(s.addr, s.reuseport)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.http.BaseContext = func(net.Listener) context.Context { return ctx }

	go func() {
		defer close(s.done)

		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("Http server errored", zap.Error(err))
		}
	}()

	s.log.Info("Listening", zap.String("addr", listener.Addr().String()))

	return nil
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Shutdown stops accepting connections and waits for in flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.http.SetKeepAlivesEnabled(false)

	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}

	if s.Addr() != nil {
		<-s.done
	}

	return nil
}

// Listen opens a TCP listener on addr, with SO_REUSEPORT set when reuse is
// true.
func Listen(addr string, reuse bool) (net.Listener, error) {
	if reuse {
		return reuseport.Listen("tcp", addr)
	}

	return net.Listen("tcp", addr)
}
