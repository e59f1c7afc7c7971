package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-hotseat/mocks/usecase"
)

var errEngineBroken = errors.New("engine broken")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRoundManager_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the engine snapshot on accepted move", func(t *testing.T) {
		// Given: an engine that accepts cell 4
		mockEngine := mockedUseCase.NewMockengineDep(t)
		manager := NewRoundManager(newTestLogger(), mockEngine)

		expected := entity.Snapshot{Round: 1, Turn: entity.MarkO, Status: entity.StatusInProgress}
		expected.Board[4] = entity.MarkX
		mockEngine.EXPECT().ApplyMove(4).Return(expected, nil).Once()

		// When: making the move
		snapshot, err := manager.MakeMove(ctx, 4)

		// Then: the snapshot is passed through
		require.NoError(t, err)
		assert.Equal(t, expected, snapshot)
	})

	t.Run("Logs a won round without failing", func(t *testing.T) {
		// Given: an engine reporting a win
		mockEngine := mockedUseCase.NewMockengineDep(t)
		manager := NewRoundManager(newTestLogger(), mockEngine)

		line := entity.Line{0, 1, 2}
		expected := entity.Snapshot{Status: entity.StatusWon, Winner: entity.MarkX, WinningLine: &line, Score: entity.ScoreTally{X: 1}}
		mockEngine.EXPECT().ApplyMove(2).Return(expected, nil).Once()

		// When: making the winning move
		snapshot, err := manager.MakeMove(ctx, 2)

		// Then: the win is returned
		require.NoError(t, err)
		assert.Equal(t, expected, snapshot)
	})

	t.Run("Keeps rejection errors matchable", func(t *testing.T) {
		// Given: an engine rejecting an occupied cell
		mockEngine := mockedUseCase.NewMockengineDep(t)
		manager := NewRoundManager(newTestLogger(), mockEngine)

		current := entity.Snapshot{Round: 1}
		mockEngine.EXPECT().
			ApplyMove(0).
			Return(current, &apperror.MoveRejected{Reason: apperror.CellOccupied, Cell: 0}).
			Once()

		// When: making the move
		snapshot, err := manager.MakeMove(ctx, 0)

		// Then: the wrapped error still carries the reason and the current snapshot is returned
		require.ErrorIs(t, err, apperror.ErrMoveRejected)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, current, snapshot)
	})

	t.Run("Keeps invalid input matchable", func(t *testing.T) {
		// Given: an engine refusing an out of range index
		mockEngine := mockedUseCase.NewMockengineDep(t)
		manager := NewRoundManager(newTestLogger(), mockEngine)

		mockEngine.EXPECT().ApplyMove(12).Return(entity.Snapshot{}, apperror.ErrInvalidInput).Once()

		// When: making the move
		_, err := manager.MakeMove(ctx, 12)

		// Then: ErrInvalidInput is preserved
		require.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("Wraps unexpected engine errors", func(t *testing.T) {
		mockEngine := mockedUseCase.NewMockengineDep(t)
		manager := NewRoundManager(newTestLogger(), mockEngine)

		mockEngine.EXPECT().ApplyMove(1).Return(entity.Snapshot{}, errEngineBroken).Once()

		_, err := manager.MakeMove(ctx, 1)

		require.ErrorIs(t, err, errEngineBroken)
	})

	t.Run("Canceled context never reaches the engine", func(t *testing.T) {
		// Given: a canceled context
		mockEngine := mockedUseCase.NewMockengineDep(t)
		manager := NewRoundManager(newTestLogger(), mockEngine)

		canceledCtx, cancel := context.WithCancel(ctx)
		cancel()

		// When: making a move
		_, err := manager.MakeMove(canceledCtx, 0)

		// Then: the context error is returned and the mock saw no call
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRoundManager_ResetRound(t *testing.T) {
	// Given: an engine whose reset opens round two with O
	mockEngine := mockedUseCase.NewMockengineDep(t)
	manager := NewRoundManager(newTestLogger(), mockEngine)

	expected := entity.Snapshot{Round: 2, Turn: entity.MarkO, Score: entity.ScoreTally{X: 1}}
	mockEngine.EXPECT().ResetRound().Return(expected).Once()

	// When: resetting
	snapshot, err := manager.ResetRound(context.Background())

	// Then: the new round is returned
	require.NoError(t, err)
	assert.Equal(t, expected, snapshot)
}

func TestRoundManager_GetSnapshot(t *testing.T) {
	mockEngine := mockedUseCase.NewMockengineDep(t)
	manager := NewRoundManager(newTestLogger(), mockEngine)

	expected := entity.Snapshot{Round: 3}
	mockEngine.EXPECT().Snapshot().Return(expected).Twice()

	for range 2 {
		snapshot, err := manager.GetSnapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, expected, snapshot)
	}
}

func TestRoundManager_ConcurrentMoves(t *testing.T) {
	// Given: a real engine shared by many goroutines
	manager := NewRoundManager(newTestLogger(), tictactoe.NewEngine(entity.MarkX))
	ctx := context.Background()

	// When: every cell is targeted twice at the same time
	var wg sync.WaitGroup
	for cell := range entity.BoardSize * 2 {
		wg.Add(1)
		go func(cell int) {
			defer wg.Done()
			_, _ = manager.MakeMove(ctx, cell%entity.BoardSize)
		}(cell)
	}
	wg.Wait()

	// Then: the round finished and no cell was written twice
	snapshot, err := manager.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.RoundOver)

	marks := 0
	for _, cell := range snapshot.Board {
		if cell != entity.Empty {
			marks++
		}
	}

	// a win can end the round before the board fills
	assert.GreaterOrEqual(t, marks, 5)
	assert.LessOrEqual(t, snapshot.Score.X+snapshot.Score.O, 1)
}
