package suite

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Console *console.Console
	Output  *bytes.Buffer
	Logs    *bytes.Buffer
}

// New - builds a plain console that reads the given lines in order and records everything written.
func New(t *testing.T, lines ...string) *Suite {
	t.Helper()

	output := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	input := strings.NewReader(Script(lines...))

	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("console output:\n%s", output.String())
		}
	})

	return &Suite{
		T:       t,
		Logger:  logger,
		Console: console.New(input, output, console.WithColor(false)),
		Output:  output,
		Logs:    logs,
	}
}

// Script - joins input lines the way a user would type them.
func Script(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// Moves - flattens (row, col) pairs into input lines.
func Moves(moves ...[2]int) []string {
	lines := make([]string, 0, len(moves)*2)
	for _, move := range moves {
		lines = append(lines, strconv.Itoa(move[0]), strconv.Itoa(move[1]))
	}

	return lines
}
