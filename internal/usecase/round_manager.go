package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type engineDep interface {
	ApplyMove(cell int) (entity.Snapshot, error)
	ResetRound() entity.Snapshot
	Snapshot() entity.Snapshot
}

type RoundUseCase interface {
	MakeMove(ctx context.Context, cell int) (entity.Snapshot, error)
	ResetRound(ctx context.Context) (entity.Snapshot, error)
	GetSnapshot(ctx context.Context) (entity.Snapshot, error)
}

// RoundManager serialises access to a single engine so it can be shared by concurrent hosts.
type RoundManager struct {
	logger *slog.Logger

	mu     sync.Mutex
	engine engineDep
}

func NewRoundManager(logger *slog.Logger, engine engineDep) *RoundManager {
	return &RoundManager{
		logger: logger.With("component", "round_manager"),
		engine: engine,
	}
}

func (that *RoundManager) MakeMove(ctx context.Context, cell int) (entity.Snapshot, error) {
	log := that.logger.With("method", "MakeMove", "cell", cell)

	if err := ctx.Err(); err != nil {
		return entity.Snapshot{}, fmt.Errorf("make move canceled: %w", err)
	}

	that.mu.Lock()
	snapshot, err := that.engine.ApplyMove(cell)
	that.mu.Unlock()

	switch {
	case errors.Is(err, apperror.ErrInvalidInput):
		log.Warn("invalid move input", "error", err)
		return snapshot, fmt.Errorf("failed make move: %w", err)
	case errors.Is(err, apperror.ErrMoveRejected):
		log.Debug("move rejected", "error", err)
		return snapshot, fmt.Errorf("failed make move: %w", err)
	case err != nil:
		return snapshot, fmt.Errorf("failed make move: %w", err)
	}

	log.Debug("move accepted", "round", snapshot.Round, "next", snapshot.Turn)

	switch snapshot.Status {
	case entity.StatusWon:
		log.Info("round won",
			"round", snapshot.Round,
			"winner", snapshot.Winner,
			"line", snapshot.WinningLine,
			"score_x", snapshot.Score.X,
			"score_o", snapshot.Score.O,
		)
	case entity.StatusDrawn:
		log.Info("round drawn", "round", snapshot.Round)
	}

	return snapshot, nil
}

func (that *RoundManager) ResetRound(ctx context.Context) (entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return entity.Snapshot{}, fmt.Errorf("reset round canceled: %w", err)
	}

	that.mu.Lock()
	snapshot := that.engine.ResetRound()
	that.mu.Unlock()

	that.logger.Info("round reset", "method", "ResetRound", "round", snapshot.Round, "opener", snapshot.Turn)

	return snapshot, nil
}

func (that *RoundManager) GetSnapshot(ctx context.Context) (entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return entity.Snapshot{}, fmt.Errorf("get snapshot canceled: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.Snapshot(), nil
}
