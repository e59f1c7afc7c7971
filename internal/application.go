package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/rest"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/tui"
)

var ErrUnknownMode = errors.New("unknown mode")

// RunApp - runs the application in the configured mode until it exits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	engine := tictactoe.NewEngine(entity.Mark(conf.FirstMark))
	rounds := usecase.NewRoundManager(logger, engine)

	switch conf.Mode {
	case config.ModeHTTP:
		addr := conf.HTTP.GetAddr()
		log.Info("Starting HTTP server", "addr", addr)

		if err := rest.New(logger, rounds).Start(ctx, addr); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	case config.ModeTUI:
		log.Info("Starting terminal UI", "theme", conf.Theme)

		view, err := tui.New(ctx, logger, rounds, conf.Theme)
		if err != nil {
			return fmt.Errorf("could not create terminal ui: %w", err)
		}

		if err = view.Run(ctx); err != nil {
			return fmt.Errorf("terminal ui error: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, conf.Mode)
	}

	log.Info("Application stopped")

	return nil
}
