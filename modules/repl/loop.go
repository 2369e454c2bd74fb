package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/example/go-calculator/config"
	"github.com/example/go-calculator/domain/calc"
	"github.com/example/go-calculator/modules/calculator"
)

const (
	quitCommand = "quit"

	// maxLineBytes caps a single input line.
	maxLineBytes = 1 << 20
)

// ErrInputClosed is returned by Run when the input reaches end of stream
// before a quit command.
var ErrInputClosed = errors.New("input stream closed")

// Loop is the read-evaluate-print cycle. It holds no state between lines.
type Loop struct {
	calculator calculator.CalculatorPort
	color      config.ColorMode
	timeout    time.Duration
}

// NewLoop creates a Loop that delegates every calculation to port.
// A zero timeout leaves evaluation calls bounded only by the Run context.
func NewLoop(port calculator.CalculatorPort, color config.ColorMode, timeout time.Duration) *Loop {
	return &Loop{
		calculator: port,
		color:      color,
		timeout:    timeout,
	}
}

// Run prints the banner and then prompts, reads and evaluates lines from in
// until a line equal to "quit" (any case) is read, which returns nil.
//
// Evaluation failures are printed and never end the loop. End of input
// returns ErrInputClosed; read, write and evaluator transport failures are
// returned wrapped. Cancelling ctx stops the loop before the next prompt.
func (l *Loop) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	p := newPrinter(out, l.color)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	if err := p.banner(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.prompt(); err != nil {
			return err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return ErrInputClosed
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, quitCommand) {
			return p.farewell()
		}

		value, err := l.evaluate(ctx, line)
		var calcErr *calc.Error
		switch {
		case err == nil:
			err = p.result(value)
		case errors.As(err, &calcErr):
			err = p.failed(calcErr)
		default:
			return fmt.Errorf("evaluate %q: %w", line, err)
		}
		if err != nil {
			return err
		}
	}
}

func (l *Loop) evaluate(ctx context.Context, line string) (float64, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return l.calculator.Evaluate(ctx, line)
}
