package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tubegen/config"
	"github.com/katalvlaran/tubegen/generator"
	"github.com/katalvlaran/tubegen/label"
	"github.com/katalvlaran/tubegen/render"
)

// puzzleJSON is the json output record.
type puzzleJSON struct {
	ID         string   `json:"id"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Pairs      int      `json:"pairs"`
	Attempts   int      `json:"attempts"`
	Insertions int      `json:"insertions"`
	Walls      []string `json:"walls"`
	Tubes      []string `json:"tubes"`
	Scheme     string   `json:"scheme"`
}

type printer struct {
	w        io.Writer
	format   string
	renderer *render.Renderer
	labels   []label.Option
}

func newPrinter(w io.Writer, cfg *config.Config) *printer {
	palette := make([]lipgloss.Color, len(cfg.Output.Palette))
	for i, c := range cfg.Output.Palette {
		palette[i] = lipgloss.Color(c)
	}
	r := render.New(w, palette...)
	return &printer{
		w:        w,
		format:   cfg.Output.Format,
		renderer: r,
		labels:   cfg.LabelOptions(r.PaletteSize()),
	}
}

func (p *printer) print(results []*generator.Result) error {
	if p.format == config.FormatJSON {
		return p.printJSON(results)
	}
	for i, res := range results {
		l, err := label.Apply(res.Grid, p.labels...)
		if err != nil {
			return fmt.Errorf("label puzzle %d: %w", i, err)
		}
		switch p.format {
		case config.FormatScheme:
			_, err = fmt.Fprintln(p.w, l.Scheme())
		case config.FormatRaw:
			err = p.block(i, res.Grid.String())
		default:
			err = p.block(i, p.renderer.Labeling(l))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// block writes one multi-line puzzle, separated from the previous by a
// blank line.
func (p *printer) block(i int, s string) error {
	if i > 0 {
		if _, err := io.WriteString(p.w, "\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w, s)
	return err
}

func (p *printer) printJSON(results []*generator.Result) error {
	out := make([]puzzleJSON, 0, len(results))
	for i, res := range results {
		l, err := label.Apply(res.Grid, p.labels...)
		if err != nil {
			return fmt.Errorf("label puzzle %d: %w", i, err)
		}
		out = append(out, puzzleJSON{
			ID:         res.ID.String(),
			Width:      res.Grid.Width,
			Height:     res.Grid.Height,
			Pairs:      res.Pairs,
			Attempts:   res.Attempts,
			Insertions: res.Insertions,
			Walls:      res.Grid.Rows(),
			Tubes:      l.Tubes.Grid.Rows(),
			Scheme:     l.Scheme(),
		})
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
