// Package tictactoe holds the game engine: the round in play and the score across rounds.
package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Engine owns the round state and the score tally. It is not safe for concurrent use.
type Engine struct {
	state entity.RoundState
	score entity.ScoreTally
}

// NewEngine creates an engine whose first round is opened by opener, X when opener is empty.
func NewEngine(opener entity.Mark) *Engine {
	if !opener.IsValid() {
		opener = entity.MarkX
	}

	return &Engine{
		state: entity.NewRoundState(1, opener),
	}
}

// ApplyMove places the current mark at cell. A rejected move leaves the engine untouched
// and returns the current snapshot together with the error.
func (that *Engine) ApplyMove(cell int) (entity.Snapshot, error) {
	if err := that.validateMove(cell); err != nil {
		return that.Snapshot(), err
	}

	that.state.Board[cell] = that.state.Turn
	that.state.Turn = that.state.Turn.Opponent()

	that.updateRoundState()

	return that.Snapshot(), nil
}

// ResetRound starts a new round. The opener flips on every call, however the last round ended.
// The score is kept.
func (that *Engine) ResetRound() entity.Snapshot {
	that.state = entity.NewRoundState(that.state.Round+1, that.state.Opener.Opponent())

	return that.Snapshot()
}

func (that *Engine) Snapshot() entity.Snapshot {
	return entity.NewSnapshot(that.state, that.score)
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidInput, cell)
	}

	if that.state.RoundOver {
		return &apperror.MoveRejected{Reason: apperror.RoundAlreadyOver, Cell: cell}
	}

	if that.state.Board[cell] != entity.Empty {
		return &apperror.MoveRejected{Reason: apperror.CellOccupied, Cell: cell}
	}

	return nil
}

// updateRoundState - recomputes the outcome after an accepted move and scores a win once.
func (that *Engine) updateRoundState() {
	outcome := entity.Evaluate(that.state.Board)
	that.state.Outcome = outcome

	switch {
	case outcome.IsWon():
		that.state.RoundOver = true
		that.score.Increment(outcome.Winner)
	case outcome.IsDrawn():
		that.state.RoundOver = true
	}
}
