package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/pkg/handlers"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger  *slog.Logger
	rounds  usecase.RoundUseCase
	handler http.Handler
}

func New(logger *slog.Logger, rounds usecase.RoundUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		rounds: rounds,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", handlers.PingHandler)
	mux.HandleFunc("GET /api/round", server.handleGetRound)
	mux.HandleFunc("POST /api/round/moves", server.handleMove)
	mux.HandleFunc("POST /api/round/reset", server.handleReset)

	server.handler = mux

	return server
}

func (that *Server) Handler() http.Handler {
	return that.handler
}

// Start - serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      that.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}
