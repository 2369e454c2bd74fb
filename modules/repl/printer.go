package repl

import (
	"fmt"
	"io"

	"github.com/example/go-calculator/config"
	"github.com/example/go-calculator/domain/calc"
	"github.com/fatih/color"
)

const (
	banner   = "Welcome to Go Calculator!"
	usage    = "Enter calculations like: 5 + 3 or type 'quit' to exit"
	prompt   = "Enter your calculation:"
	farewell = "Goodbye!"
)

// printer writes the user-facing text of the input loop.
type printer struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
}

// newPrinter creates a printer for out. In auto mode colors follow
// color.NoColor, which is set when stdout is not a terminal or NO_COLOR is set.
func newPrinter(out io.Writer, mode config.ColorMode) *printer {
	p := &printer{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	switch mode {
	case config.ColorAlways:
		p.success.EnableColor()
		p.failure.EnableColor()
	case config.ColorNever:
		p.success.DisableColor()
		p.failure.DisableColor()
	}
	return p
}

func (p *printer) println(s string) error {
	if _, err := fmt.Fprintln(p.out, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (p *printer) banner() error {
	if err := p.println(banner); err != nil {
		return err
	}
	return p.println(usage)
}

func (p *printer) prompt() error {
	return p.println("\n" + prompt)
}

func (p *printer) result(v float64) error {
	return p.println(p.success.Sprint("Result: " + calc.FormatResult(v)))
}

func (p *printer) failed(err error) error {
	return p.println(p.failure.Sprint("Error: " + err.Error()))
}

func (p *printer) farewell() error {
	return p.println(farewell)
}
