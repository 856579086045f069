package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type HTTPServer struct {
	logs   *zap.SugaredLogger
	server *http.Server
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run starts the server and reports its terminal error on the returned
// channel.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.logs.Infow("server starting", "addr", s.server.Addr)
		errChan <- s.server.ListenAndServe()
	}()

	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logs.Infow("server shutting down")
	return s.server.Shutdown(ctx)
}
