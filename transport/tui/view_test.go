package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

func newTestView(t *testing.T, themeName string) *View {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	rounds := usecase.NewRoundManager(logger, tictactoe.NewEngine(entity.MarkX))

	view, err := New(context.Background(), logger, rounds, themeName)
	require.NoError(t, err)

	return view
}

func pressRune(view *View, r rune) *tcell.EventKey {
	return view.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestView_InitialRender(t *testing.T) {
	// When: a view is created
	view := newTestView(t, config.ThemeLight)

	// Then: the empty board, status and score are shown
	for _, cell := range view.cells {
		assert.Equal(t, " ", cell.GetLabel())
	}
	assert.Equal(t, "Next: X", view.status.GetText(true))
	assert.Equal(t, "X: 0   O: 0", view.score.GetText(true))
	assert.Equal(t, "Board square: empty", view.hint.GetText(true))
	assert.Equal(t, "Dark", view.toggle.GetLabel())
}

func TestView_Moves(t *testing.T) {
	t.Run("Cell selection places the mark", func(t *testing.T) {
		// Given: a fresh view
		view := newTestView(t, config.ThemeLight)

		// When: the center cell is chosen
		view.handleCell(4)

		// Then: X is shown there and O is next
		assert.Equal(t, "X", view.cells[4].GetLabel())
		assert.Equal(t, "Next: O", view.status.GetText(true))
	})

	t.Run("Digit keys map to cells", func(t *testing.T) {
		// Given: a fresh view
		view := newTestView(t, config.ThemeLight)

		// When: 1 and 9 are pressed
		assert.Nil(t, pressRune(view, '1'))
		assert.Nil(t, pressRune(view, '9'))

		// Then: the corners are taken in turn and the hint follows the focus
		assert.Equal(t, "X", view.cells[0].GetLabel())
		assert.Equal(t, "O", view.cells[8].GetLabel())
		assert.Equal(t, 8, view.selected)
		assert.Equal(t, "Board square: O", view.hint.GetText(true))
	})

	t.Run("Rejected move is ignored", func(t *testing.T) {
		// Given: X holds the center
		view := newTestView(t, config.ThemeLight)
		view.handleCell(4)
		before := view.snapshot

		// When: the center is chosen again
		view.handleCell(4)

		// Then: nothing changed
		assert.Equal(t, before, view.snapshot)
		assert.Equal(t, "Next: O", view.status.GetText(true))
	})

	t.Run("Win updates status and score", func(t *testing.T) {
		// Given: a fresh view
		view := newTestView(t, config.ThemeLight)

		// When: X completes the top row
		for _, cell := range []int{0, 3, 1, 4, 2} {
			view.handleCell(cell)
		}

		// Then: the winner and score are shown and the line is highlighted
		assert.Equal(t, "Winner: X", view.status.GetText(true))
		assert.Equal(t, "X: 1   O: 0", view.score.GetText(true))
		assert.True(t, view.snapshot.IsHighlighted(1))
	})
}

func TestView_Reset(t *testing.T) {
	// Given: X has won
	view := newTestView(t, config.ThemeLight)
	for _, cell := range []int{0, 3, 1, 4, 2} {
		view.handleCell(cell)
	}

	// When: r is pressed
	assert.Nil(t, pressRune(view, 'r'))

	// Then: the board is cleared, O opens and the score is kept
	for _, cell := range view.cells {
		assert.Equal(t, " ", cell.GetLabel())
	}
	assert.Equal(t, "Next: O", view.status.GetText(true))
	assert.Equal(t, "X: 1   O: 0", view.score.GetText(true))
}

func TestView_ToggleTheme(t *testing.T) {
	// Given: a dark view with a move played
	view := newTestView(t, config.ThemeDark)
	view.handleCell(0)
	before := view.snapshot

	// When: the theme is toggled with t
	assert.Nil(t, pressRune(view, 't'))

	// Then: the display switches to light and the round is untouched
	assert.Equal(t, config.ThemeLight, view.theme.Name)
	assert.Equal(t, "Dark", view.toggle.GetLabel())
	assert.Equal(t, before, view.snapshot)

	snapshot, err := view.rounds.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, snapshot)

	// When: toggled again
	view.ToggleTheme()

	// Then: back to dark
	assert.Equal(t, config.ThemeDark, view.theme.Name)
	assert.Equal(t, "Light", view.toggle.GetLabel())
}

func TestView_Navigation(t *testing.T) {
	view := newTestView(t, config.ThemeLight)

	view.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Equal(t, 1, view.selected)

	view.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, 4, view.selected)

	// Then: moves past the edge are ignored
	view.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	view.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Equal(t, 5, view.selected)

	view.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	view.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, 2, view.selected)

	// Then: unknown keys pass through
	event := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	assert.Equal(t, event, view.handleKey(event))
}

func TestTheme(t *testing.T) {
	assert.Equal(t, DarkTheme, LightTheme.Next())
	assert.Equal(t, LightTheme, DarkTheme.Next())
	assert.Equal(t, LightTheme, ThemeByName("anything"))
	assert.Equal(t, DarkTheme.MarkO, DarkTheme.MarkColor(entity.MarkO))
	assert.Equal(t, DarkTheme.Foreground, DarkTheme.MarkColor(entity.Empty))
}
