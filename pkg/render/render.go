// Package render pretty-prints corpus documents for the terminal.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Options configure terminal rendering.
type Options struct {
	// WordWrap is the column documents are wrapped at.
	WordWrap int
	// Style is a glamour style name ("dark", "light", "notty"). Empty selects
	// the style automatically from the terminal.
	Style string
}

// Terminal renders Markdown for display in a terminal.
type Terminal struct {
	renderer *glamour.TermRenderer
}

// New creates a Terminal renderer.
func New(options Options) (*Terminal, error) {
	if options.WordWrap <= 0 {
		options.WordWrap = 80
	}

	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(options.WordWrap),
	}
	if options.Style != "" {
		opts = append(opts, glamour.WithStylePath(options.Style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create renderer: %w", err)
	}

	return &Terminal{renderer: renderer}, nil
}

// Render returns the ANSI-styled rendition of the given Markdown source.
func (t *Terminal) Render(source []byte) (string, error) {
	out, err := t.renderer.RenderBytes(source)
	if err != nil {
		return "", fmt.Errorf("could not render document: %w", err)
	}

	return string(out), nil
}
