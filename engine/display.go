package engine

import (
	"fmt"
	"io"
	"strings"

	"pacman/game"

	"github.com/logrusorgru/aurora"
)

// Display draws boards as text, coloured when the writer supports it
type Display struct {
	out io.Writer
	au  aurora.Aurora
}

func NewDisplay(out io.Writer, colors bool) *Display {
	return &Display{out: out, au: aurora.NewAurora(colors)}
}

func (d *Display) Render(state *game.GameState, step int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "step %d\n", step)
	for _, r := range state.String() {
		b.WriteString(d.paint(r).String())
	}
	b.WriteString("\n")

	if _, err := io.WriteString(d.out, b.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}

func (d *Display) paint(r rune) fmt.Stringer {
	s := string(r)
	switch r {
	case '%':
		return d.au.Blue(s)
	case '.', 'o':
		return d.au.White(s)
	case 'P':
		return d.au.Yellow(s)
	case 'G':
		return d.au.Red(s)
	case 'S':
		return d.au.Cyan(s)
	default:
		return d.au.Reset(s)
	}
}
