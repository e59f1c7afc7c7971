package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Theme is a display palette. Switching it never touches the round.
type Theme struct {
	Name       string
	Background tcell.Color
	Foreground tcell.Color
	Cell       tcell.Color
	CellFocus  tcell.Color
	Highlight  tcell.Color
	MarkX      tcell.Color
	MarkO      tcell.Color
	Toggle     string
}

var (
	LightTheme = Theme{
		Name:       config.ThemeLight,
		Background: tcell.NewHexColor(0xf5f5f5),
		Foreground: tcell.NewHexColor(0x222222),
		Cell:       tcell.NewHexColor(0xffffff),
		CellFocus:  tcell.NewHexColor(0xc6dbef),
		Highlight:  tcell.NewHexColor(0xffe08a),
		MarkX:      tcell.NewHexColor(0x1565c0),
		MarkO:      tcell.NewHexColor(0xc62828),
		Toggle:     "Dark",
	}

	DarkTheme = Theme{
		Name:       config.ThemeDark,
		Background: tcell.NewHexColor(0x1a1a1a),
		Foreground: tcell.NewHexColor(0xe6edf3),
		Cell:       tcell.NewHexColor(0x30363d),
		CellFocus:  tcell.NewHexColor(0x58a6ff),
		Highlight:  tcell.NewHexColor(0xe3b341),
		MarkX:      tcell.NewHexColor(0x79c0ff),
		MarkO:      tcell.NewHexColor(0xff7b72),
		Toggle:     "Light",
	}
)

func ThemeByName(name string) Theme {
	if name == config.ThemeDark {
		return DarkTheme
	}

	return LightTheme
}

func (that Theme) Next() Theme {
	if that.Name == config.ThemeDark {
		return LightTheme
	}

	return DarkTheme
}

func (that Theme) MarkColor(mark entity.Mark) tcell.Color {
	switch mark {
	case entity.MarkX:
		return that.MarkX
	case entity.MarkO:
		return that.MarkO
	default:
		return that.Foreground
	}
}
