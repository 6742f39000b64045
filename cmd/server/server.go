package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	shutdownTimeout = 10 * time.Second
	idleTimeout     = 120 * time.Second
)

// newHTTPServer builds the server with the configured timeouts.
func (app *application) newHTTPServer(handler http.Handler) *http.Server {
	s := app.config.Server
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Duration(s.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(s.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       idleTimeout,
	}
}

// serve runs the HTTP server until ctx is canceled, then drains in-flight
// requests for up to shutdownTimeout.
func (app *application) serve(ctx context.Context, handler http.Handler) error {
	server := app.newHTTPServer(handler)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		app.logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", slog.String("error", err.Error()))
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
