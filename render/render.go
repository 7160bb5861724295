// Package render draws labelled tube grids for a terminal.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/tubegen/label"
	"github.com/katalvlaran/tubegen/walk"
)

// DefaultPalette holds one colour per tube slot.
var DefaultPalette = []lipgloss.Color{
	lipgloss.Color("#2CD7C7"), // teal
	lipgloss.Color("#F4D03F"), // amber
	lipgloss.Color("#E74C3C"), // red
	lipgloss.Color("#9B59B6"), // violet
	lipgloss.Color("#3498DB"), // blue
	lipgloss.Color("#2ECC71"), // green
	lipgloss.Color("#E67E22"), // orange
	lipgloss.Color("#EC87C0"), // pink
}

// Renderer colours tube cells by their label.Group palette slot.
type Renderer struct {
	tube []lipgloss.Style
	end  []lipgloss.Style
}

// New returns a Renderer whose colour profile is detected from w.
// An empty palette selects DefaultPalette.
func New(w io.Writer, palette ...lipgloss.Color) *Renderer {
	return newRenderer(lipgloss.NewRenderer(w), palette)
}

// NewWithProfile returns a Renderer with a fixed colour profile;
// termenv.Ascii disables colour entirely.
func NewWithProfile(profile termenv.Profile, palette ...lipgloss.Color) *Renderer {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(profile)
	return newRenderer(lr, palette)
}

func newRenderer(lr *lipgloss.Renderer, palette []lipgloss.Color) *Renderer {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	r := &Renderer{
		tube: make([]lipgloss.Style, len(palette)),
		end:  make([]lipgloss.Style, len(palette)),
	}
	for i, c := range palette {
		r.tube[i] = lr.NewStyle().Foreground(c)
		r.end[i] = lr.NewStyle().Foreground(c).Bold(true)
	}
	return r
}

// PaletteSize is the number of colour slots; pass it to label.WithPalette.
func (r *Renderer) PaletteSize() int {
	return len(r.tube)
}

// Labeling renders the labelled tube grid of l row by row. Cells of groups
// without a palette slot are written unstyled.
func (r *Renderer) Labeling(l *label.Labeling) string {
	g := l.Tubes.Grid
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			p := walk.Vec{X: x, Y: y}
			cell := string(g.At(p))
			grp, ok := l.GroupOf(p)
			if !ok || grp.Color < 0 {
				b.WriteString(cell)
				continue
			}
			slot := grp.Color % len(r.tube)
			if grp.Label != 0 && g.At(p) == grp.Label {
				b.WriteString(r.end[slot].Render(cell))
				continue
			}
			b.WriteString(r.tube[slot].Render(cell))
		}
	}
	return b.String()
}
