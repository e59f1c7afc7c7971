package entity

import "fmt"

type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDrawn      = "drawn"
)

const BoardSize = 9

// Line is a triple of board indices.
type Line [3]int

// WinCombos lists every winning line: rows, then columns, then diagonals.
// Evaluation order matters, the first matching line is reported.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

// Board is stored row-major: index i is row i/3, column i%3.
type Board [BoardSize]Mark

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) Contains(line Line, index int) bool {
	for _, i := range line {
		if i == index {
			return true
		}
	}

	return false
}

// Outcome is the result of evaluating a board. Line is only meaningful when Status is StatusWon.
type Outcome struct {
	Status string
	Winner Mark
	Line   Line
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) IsDrawn() bool {
	return that.Status == StatusDrawn
}

func (that Outcome) IsFinished() bool {
	return that.IsWon() || that.IsDrawn()
}

// Evaluate classifies the board from scratch.
func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return Outcome{Status: StatusWon, Winner: a, Line: combo}
		}
	}

	// the round will continue until all the squares are full
	if board.IsFull() {
		return Outcome{Status: StatusDrawn}
	}

	return Outcome{Status: StatusInProgress}
}

type ScoreTally struct {
	X int `json:"X"`
	O int `json:"O"`
}

func (that *ScoreTally) Increment(mark Mark) {
	switch mark {
	case MarkX:
		that.X++
	case MarkO:
		that.O++
	}
}

func (that ScoreTally) Of(mark Mark) int {
	switch mark {
	case MarkX:
		return that.X
	case MarkO:
		return that.O
	default:
		return 0
	}
}

// RoundState is the mutable state of the round in play.
// Opener is the mark that started the current round.
type RoundState struct {
	Round     int
	Board     Board
	Turn      Mark
	Opener    Mark
	Outcome   Outcome
	RoundOver bool
}

func NewRoundState(round int, opener Mark) RoundState {
	return RoundState{
		Round:   round,
		Turn:    opener,
		Opener:  opener,
		Outcome: Outcome{Status: StatusInProgress},
	}
}

// Snapshot is a read-only copy of the engine state handed to presentation.
type Snapshot struct {
	Round       int        `json:"round"`
	Board       Board      `json:"board"`
	Turn        Mark       `json:"turn"`
	Status      string     `json:"status"`
	Winner      Mark       `json:"winner"`
	WinningLine *Line      `json:"winning_line"`
	RoundOver   bool       `json:"round_over"`
	Score       ScoreTally `json:"score"`
	StatusText  string     `json:"status_text"`
}

func NewSnapshot(state RoundState, score ScoreTally) Snapshot {
	snapshot := Snapshot{
		Round:     state.Round,
		Board:     state.Board,
		Turn:      state.Turn,
		Status:    state.Outcome.Status,
		Winner:    state.Outcome.Winner,
		RoundOver: state.RoundOver,
		Score:     score,
	}

	if state.Outcome.IsWon() {
		line := state.Outcome.Line
		snapshot.WinningLine = &line
	}

	snapshot.StatusText = snapshot.statusText()

	return snapshot
}

func (that Snapshot) statusText() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("Winner: %s", that.Winner)
	case StatusDrawn:
		return "Draw!"
	default:
		return fmt.Sprintf("Next: %s", that.Turn)
	}
}

// IsHighlighted reports whether the cell belongs to the winning line.
func (that Snapshot) IsHighlighted(index int) bool {
	if that.WinningLine == nil {
		return false
	}

	return that.Board.Contains(*that.WinningLine, index)
}

// CellLabel is the accessible label of a cell.
func (that Snapshot) CellLabel(index int) string {
	if index < 0 || index >= BoardSize || that.Board[index] == Empty {
		return "Board square: empty"
	}

	return fmt.Sprintf("Board square: %s", that.Board[index])
}
