package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/gopang/internal/activity"
	"github.com/nfrund/gopang/internal/config"
	"github.com/nfrund/gopang/internal/metrics"
	"github.com/samber/do/v2"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is canceled or an interrupt or
// terminate signal arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := notifyShutdown(ctx)
	defer stop()

	recorder := activity.NewRecorder(do.MustInvoke[*metrics.Metrics](s.injector))
	if err := recorder.Start(ctx, s.bus); err != nil {
		return fmt.Errorf("failed to start activity recorder: %w", err)
	}

	if s.Cfg.GetAssetsMode() == config.AssetsDisk {
		if err := s.assets.Watch(ctx, s.Cfg.GetAssetsDir()); err != nil {
			slog.Warn("static assets will not be reloaded", "error", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", s.Cfg.GetAppAddr())
		if err := s.E.Start(s.Cfg.GetAppAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("shutting down the server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
