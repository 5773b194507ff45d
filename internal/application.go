package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

// RunApp - plays one game on the given input and output.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	useColor := conf.UseColor(console.IsTerminal(out))
	log.Debug("starting game", "color", useColor)

	board := entity.NewBoard()
	term := console.New(in, out, console.WithColor(useColor))
	gameController := tictactoe.NewGameController(logger, board, term)

	outcome, err := gameController.Play()
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Debug("game over", "status", outcome.Status, "winner", outcome.Winner.String())

	return nil
}
