package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/example/go-calculator/config"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...any)         {}
func (m *mockLogger) Info(_ string, _ ...any)          {}
func (m *mockLogger) Warn(_ string, _ ...any)          {}
func (m *mockLogger) Error(_ string, _ ...any)         {}
func (m *mockLogger) With(_ ...any) types.Logger       { return m }
func (m *mockLogger) WithError(_ error) types.Logger   { return m }
func (m *mockLogger) WithModule(_ string) types.Logger { return m }

func newTestModule(in io.Reader, out io.Writer) *ReplModule {
	m := NewModule(&mockLogger{}, in, out, config.New(config.WithColor(config.ColorNever)))
	m.calculator = &localCalculator{}
	return m
}

func waitDone(t *testing.T, m *ReplModule) error {
	t.Helper()
	select {
	case err := <-m.Done():
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("input loop did not finish")
		return nil
	}
}

func TestModule_NameAndDependencies(t *testing.T) {
	m := NewModule(&mockLogger{}, strings.NewReader(""), io.Discard, config.DefaultConfig())

	assert.Equal(t, "repl", m.Name())
	assert.Equal(t, []string{"calculator"}, m.Dependencies())
}

func TestModule_StartRequiresCalculator(t *testing.T) {
	m := NewModule(&mockLogger{}, strings.NewReader(""), io.Discard, config.DefaultConfig())
	m.SetDependencyServiceContainer("stats", nil)

	err := m.Start(context.Background())
	assert.ErrorContains(t, err, "calculator")
}

func TestModule_QuitCompletesWithoutError(t *testing.T) {
	var out bytes.Buffer
	m := newTestModule(strings.NewReader("5 + 3\nquit\n"), &out)

	require.NoError(t, m.Start(context.Background()))
	require.NoError(t, waitDone(t, m))
	require.NoError(t, m.Stop(context.Background()))

	assert.Contains(t, out.String(), "Result: 8\n")
	assert.True(t, strings.HasSuffix(out.String(), "Goodbye!\n"))
	assert.False(t, m.Health(context.Background()).Healthy)

	_, open := <-m.Done()
	assert.False(t, open, "Done must be closed after delivering the result")
}

func TestModule_EndOfInputIsReported(t *testing.T) {
	m := newTestModule(strings.NewReader("1 + 1\n"), io.Discard)

	require.NoError(t, m.Start(context.Background()))
	assert.ErrorIs(t, waitDone(t, m), ErrInputClosed)
}

func TestModule_HealthWhileRunning(t *testing.T) {
	in, w := io.Pipe()
	m := newTestModule(in, io.Discard)

	require.NoError(t, m.Start(context.Background()))
	status := m.Health(context.Background())
	assert.True(t, status.Healthy)
	assert.Equal(t, "operational", status.Message)

	// Write returns only once the loop has read the line, so the loop is live.
	_, err := w.Write([]byte("1 + 1\n"))
	require.NoError(t, err)

	require.NoError(t, m.Stop(context.Background()))
	require.NoError(t, w.Close())

	// Either the cancellation is seen before the next prompt, or the loop was
	// already blocked in the next read and sees the closed input.
	err = waitDone(t, m)
	assert.True(t, errors.Is(err, context.Canceled) || errors.Is(err, ErrInputClosed), "got %v", err)
	assert.False(t, m.Health(context.Background()).Healthy)
}

func TestModule_StopBeforeFirstRead(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()
	m := newTestModule(in, io.Discard)

	require.NoError(t, m.Start(context.Background()))
	require.NoError(t, m.Stop(context.Background()))
	require.NoError(t, w.CloseWithError(io.ErrClosedPipe))

	err := waitDone(t, m)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInputClosed, "a closed pipe error is a read failure, not end of input")
}
