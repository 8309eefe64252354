package term

import (
	"io"
	"os"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

// Output is the default output for the terminal package
var Output io.Writer = colorable.NewColorable(os.Stdout)

// Palette holds the colors used for status messages.
type Palette struct {
	title, ok, warn, fail *color.Color
}

// NewPalette creates a palette. If enabled is false every
// color is turned off, otherwise color is used whenever the
// terminal supports it.
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		title: color.New(color.FgCyan, color.Bold),
		ok:    color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed),
	}
	if !enabled {
		for _, c := range []*color.Color{p.title, p.ok, p.warn, p.fail} {
			c.DisableColor()
		}
	}
	return p
}

// Title colors s as a heading.
func (p *Palette) Title(s string) string { return p.title.Sprint(s) }

// Green colors s for a successful action.
func (p *Palette) Green(s string) string { return p.ok.Sprint(s) }

// Yellow colors s for a warning.
func (p *Palette) Yellow(s string) string { return p.warn.Sprint(s) }

// Red colors s for a failure.
func (p *Palette) Red(s string) string { return p.fail.Sprint(s) }
