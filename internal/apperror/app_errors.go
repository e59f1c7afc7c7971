package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid cell index")
	ErrMoveRejected     = errors.New("move rejected")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrRoundAlreadyOver = errors.New("round is already over")
)

type RejectReason string

const (
	CellOccupied     RejectReason = "cell_occupied"
	RoundAlreadyOver RejectReason = "round_already_over"
)

// MoveRejected is returned for a legal index that the rules do not accept.
// It matches ErrMoveRejected and the sentinel of its reason.
type MoveRejected struct {
	Reason RejectReason
	Cell   int
}

func (that *MoveRejected) Error() string {
	return fmt.Sprintf("%s: cell %d: %s", ErrMoveRejected, that.Cell, that.cause())
}

func (that *MoveRejected) Is(target error) bool {
	return target == ErrMoveRejected || target == that.cause()
}

func (that *MoveRejected) cause() error {
	if that.Reason == CellOccupied {
		return ErrCellOccupied
	}

	return ErrRoundAlreadyOver
}
