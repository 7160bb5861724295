package label

import (
	"errors"

	"github.com/katalvlaran/tubegen/walk"
)

// ErrAlphabetExhausted indicates more labelled groups than alphabet runes.
var ErrAlphabetExhausted = errors.New("label: alphabet exhausted")

const (
	// DefaultAlphabet holds the labels in allocation order.
	DefaultAlphabet = "123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// DefaultOffset is added to a label rune when it is written to a scheme.
	DefaultOffset = -1
	// DefaultFiller marks scheme cells that are not tube ends.
	DefaultFiller = '-'
)

// Options controls label allocation and scheme encoding.
type Options struct {
	Alphabet string
	Offset   int
	Filler   rune
	// Palette is the number of colour slots; groups cycle through them.
	// Zero disables colours.
	Palette int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns DefaultAlphabet, DefaultOffset, DefaultFiller and
// no palette.
func DefaultOptions() Options {
	return Options{
		Alphabet: DefaultAlphabet,
		Offset:   DefaultOffset,
		Filler:   DefaultFiller,
	}
}

// WithAlphabet replaces the label alphabet. An empty alphabet is ignored.
func WithAlphabet(a string) Option {
	return func(o *Options) {
		if a != "" {
			o.Alphabet = a
		}
	}
}

// WithOffset sets the scheme label offset.
func WithOffset(off int) Option {
	return func(o *Options) { o.Offset = off }
}

// WithFiller sets the scheme filler rune.
func WithFiller(r rune) Option {
	return func(o *Options) { o.Filler = r }
}

// WithPalette enables n colour slots.
func WithPalette(n int) Option {
	return func(o *Options) { o.Palette = n }
}

// Group is one connectivity group of the tube grid.
type Group struct {
	// Root is the union-find representative.
	Root walk.Vec
	// Label is 0 for a group without ends.
	Label rune
	// Color is the palette slot, or -1 without a palette.
	Color int
	// Ends lists the group's end cells in encounter order.
	Ends []walk.Vec
}
