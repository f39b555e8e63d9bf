package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// notifyShutdown derives a context that is canceled on an interrupt or
// terminate signal.
func notifyShutdown(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// Shutdown stops accepting requests, waits for in-flight ones and closes
// the event bus.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down server")
	err := s.E.Shutdown(ctx)
	if cerr := s.bus.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	s.injector.Shutdown()
	return err
}
