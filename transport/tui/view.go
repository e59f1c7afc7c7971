// Package tui renders the round in the terminal and forwards key presses and clicks to the round manager.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const boardSide = 3

type View struct {
	logger *slog.Logger
	ctx    context.Context
	rounds usecase.RoundUseCase

	app      *tview.Application
	root     *tview.Flex
	board    *tview.Grid
	cells    [entity.BoardSize]*tview.Button
	status   *tview.TextView
	score    *tview.TextView
	hint     *tview.TextView
	reset    *tview.Button
	toggle   *tview.Button
	theme    Theme
	selected int
	snapshot entity.Snapshot
}

func New(ctx context.Context, logger *slog.Logger, rounds usecase.RoundUseCase, themeName string) (*View, error) {
	view := &View{
		logger: logger.With("component", "tui"),
		ctx:    ctx,
		rounds: rounds,
		app:    tview.NewApplication(),
		theme:  ThemeByName(themeName),
	}

	view.build()

	snapshot, err := rounds.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	view.render(snapshot)
	view.focusCell(0)

	return view, nil
}

// Run blocks until the user quits or ctx is canceled.
func (that *View) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	if err := that.app.SetRoot(that.root, true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}

func (that *View) build() {
	that.board = tview.NewGrid().
		SetRows(3, 3, 3).
		SetColumns(7, 7, 7).
		SetGap(1, 1)

	for i := range that.cells {
		cell := i
		button := tview.NewButton(" ").SetSelectedFunc(func() {
			that.focusCell(cell)
			that.handleCell(cell)
		})
		that.cells[i] = button
		that.board.AddItem(button, i/boardSide, i%boardSide, 1, 1, 0, 0, false)
	}

	that.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	that.score = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	that.hint = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	that.reset = tview.NewButton("Reset Round").SetSelectedFunc(that.handleReset)
	that.toggle = tview.NewButton("").SetSelectedFunc(that.ToggleTheme)

	controls := tview.NewFlex().
		AddItem(that.reset, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(that.toggle, 0, 1, false)

	that.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.score, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(that.board, boardSide*3+2, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(that.status, 1, 0, false).
		AddItem(that.hint, 1, 0, false).
		AddItem(controls, 1, 0, false)

	that.root.SetBorder(true).SetTitle(" Tic Tac Toe ")

	that.app.SetInputCapture(that.handleKey)
}

func (that *View) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		that.app.Stop()
		return nil
	case tcell.KeyUp:
		that.moveFocus(-boardSide)
		return nil
	case tcell.KeyDown:
		that.moveFocus(boardSide)
		return nil
	case tcell.KeyLeft:
		that.moveFocus(-1)
		return nil
	case tcell.KeyRight:
		that.moveFocus(1)
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); {
	case r >= '1' && r <= '9':
		cell := int(r - '1')
		that.focusCell(cell)
		that.handleCell(cell)
	case r == 'r':
		that.handleReset()
	case r == 't':
		that.ToggleTheme()
	case r == 'q':
		that.app.Stop()
	default:
		return event
	}

	return nil
}

func (that *View) handleCell(cell int) {
	snapshot, err := that.rounds.MakeMove(that.ctx, cell)

	var rejected *apperror.MoveRejected
	if errors.As(err, &rejected) {
		// the board did not change
		return
	}

	if err != nil {
		that.logger.Error("failed to make move", "cell", cell, "error", err)
		return
	}

	that.render(snapshot)
}

func (that *View) handleReset() {
	snapshot, err := that.rounds.ResetRound(that.ctx)
	if err != nil {
		that.logger.Error("failed to reset round", "error", err)
		return
	}

	that.render(snapshot)
	that.focusCell(that.selected)
}

// ToggleTheme switches between light and dark display.
func (that *View) ToggleTheme() {
	that.theme = that.theme.Next()
	that.logger.Debug("theme changed", "theme", that.theme.Name)
	that.render(that.snapshot)
}

func (that *View) moveFocus(delta int) {
	next := that.selected + delta
	if next < 0 || next >= entity.BoardSize {
		return
	}

	// left and right stay on the same row
	if (delta == 1 || delta == -1) && next/boardSide != that.selected/boardSide {
		return
	}

	that.focusCell(next)
}

func (that *View) focusCell(cell int) {
	that.selected = cell
	that.app.SetFocus(that.cells[cell])
	that.hint.SetText(that.snapshot.CellLabel(cell))
}

func (that *View) render(snapshot entity.Snapshot) {
	that.snapshot = snapshot
	theme := that.theme

	for i, button := range that.cells {
		mark := snapshot.Board[i]

		background := theme.Cell
		if snapshot.IsHighlighted(i) {
			background = theme.Highlight
		}

		label := " "
		if mark != entity.Empty {
			label = string(mark)
		}

		button.SetLabel(label).
			SetLabelColor(theme.MarkColor(mark)).
			SetLabelColorActivated(theme.MarkColor(mark)).
			SetBackgroundColorActivated(theme.CellFocus)
		button.SetBackgroundColor(background)
	}

	that.status.SetText(snapshot.StatusText).SetTextColor(theme.Foreground)
	that.score.SetText(fmt.Sprintf("X: %d   O: %d", snapshot.Score.X, snapshot.Score.O)).SetTextColor(theme.Foreground)
	that.hint.SetText(snapshot.CellLabel(that.selected)).SetTextColor(theme.Foreground)
	that.toggle.SetLabel(theme.Toggle)

	for _, box := range []*tview.Box{that.root.Box, that.board.Box, that.status.Box, that.score.Box, that.hint.Box} {
		box.SetBackgroundColor(theme.Background)
	}

	that.board.SetBordersColor(theme.Foreground)
}
