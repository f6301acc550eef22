package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/sollog/internal/config"
	"github.com/five82/sollog/internal/importance"
	"github.com/five82/sollog/internal/logline"
)

// Styles contains the lipgloss styles for level tokens and messages.
type Styles struct {
	// Level tokens
	Info  lipgloss.Style
	Debug lipgloss.Style
	Trace lipgloss.Style

	// Messages by importance
	Error    lipgloss.Style
	VeryHigh lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style
}

// newStyles builds Styles on r from the palette. Tabs are left as-is so the
// message text is never altered.
func newStyles(r *lipgloss.Renderer, p config.Palette) Styles {
	fg := func(color string) lipgloss.Style {
		return r.NewStyle().
			Foreground(lipgloss.Color(color)).
			TabWidth(lipgloss.NoTabConversion)
	}
	msg := func(s config.Style) lipgloss.Style {
		return fg(s.Color).Bold(s.Bold)
	}
	return Styles{
		Info:  fg(p.Level.Info),
		Debug: fg(p.Level.Debug),
		Trace: fg(p.Level.Trace),

		Error:    msg(p.Importance.Error),
		VeryHigh: msg(p.Importance.VeryHigh),
		High:     msg(p.Importance.High),
		Medium:   msg(p.Importance.Medium),
		Low:      msg(p.Importance.Low),
	}
}

// newRenderer returns a lipgloss renderer that always emits ANSI 256 color,
// whether or not w is a terminal.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return r
}

// LevelStyle returns the style for a level token and whether the level is
// colored at all.
func (s Styles) LevelStyle(level string) (lipgloss.Style, bool) {
	switch level {
	case logline.LevelInfo:
		return s.Info, true
	case logline.LevelDebug:
		return s.Debug, true
	case logline.LevelTrace:
		return s.Trace, true
	default:
		return lipgloss.Style{}, false
	}
}

// MessageStyle returns the style for a message of the given importance.
func (s Styles) MessageStyle(imp importance.Importance) lipgloss.Style {
	switch imp {
	case importance.Error:
		return s.Error
	case importance.VeryHigh:
		return s.VeryHigh
	case importance.High:
		return s.High
	case importance.Medium:
		return s.Medium
	default:
		return s.Low
	}
}
