package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Option func(*Console)

// WithColor - toggles ANSI colors for the marks. Plain text is the default.
func WithColor(enabled bool) Option {
	return func(that *Console) {
		for _, c := range that.marks {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// Console is a line-oriented terminal: one line in per coordinate, plain text out.
type Console struct {
	reader *bufio.Reader
	out    io.Writer

	marks map[entity.Cell]*color.Color
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	console := &Console{
		reader: bufio.NewReader(in),
		out:    out,

		marks: map[entity.Cell]*color.Color{
			entity.CellX: color.New(color.FgRed, color.Bold),
			entity.CellO: color.New(color.FgCyan, color.Bold),
		},
	}

	WithColor(false)(console)

	for _, opt := range opts {
		opt(console)
	}

	return console
}

// ReadCoordinate - prints the prompt and reads one coordinate from the next input line.
func (that *Console) ReadCoordinate(prompt string) (int, error) {
	fmt.Fprintln(that.out, prompt)

	// the last line may end without a newline
	line, err := that.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
	}

	return ParseCoordinate(line)
}

// ParseCoordinate - parses a non-negative decimal integer with an optional leading plus sign,
// surrounded by optional whitespace.
func ParseCoordinate(line string) (int, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(line), "+")

	value, err := strconv.ParseUint(digits, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	return int(value), nil
}

// RenderBoard - prints each row on its own line, every cell padded by one space on both sides.
func (that *Console) RenderBoard(rows [entity.Size][entity.Size]entity.Cell) {
	var sb strings.Builder

	for _, row := range rows {
		for _, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(that.symbol(cell))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(that.out, sb.String())
}

func (that *Console) Printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Console) symbol(cell entity.Cell) string {
	if c, ok := that.marks[cell]; ok {
		return c.Sprint(cell.String())
	}

	return cell.String()
}

// IsTerminal - reports whether w is a terminal, used to decide on colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
