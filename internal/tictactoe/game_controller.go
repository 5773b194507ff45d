package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	promptRow    = "Enter row (0-2):"
	promptColumn = "Enter column (0-2):"

	msgWelcome      = "Welcome to Tic-Tac-Toe!\n"
	msgCurrentBoard = "\nCurrent board:\n"
	msgTurn         = "\nPlayer %s's turn.\n"
	msgWinner       = "\nPlayer %s wins!\n"
	msgDraw         = "\nIt's a draw!\n"

	msgMalformedInput = "Invalid input. Please enter a number between 0 and 2.\n"
	msgOutOfRange     = "Invalid move: Row and column out of range.\n"
	msgCellOccupied   = "Invalid move: Cell already occupied.\n"
)

type console interface {
	ReadCoordinate(prompt string) (int, error)
	RenderBoard(rows [entity.Size][entity.Size]entity.Cell)
	Printf(format string, args ...any)
}

// GameController owns the board and the active player for one game.
type GameController struct {
	logger  *slog.Logger
	board   *entity.Board
	console console
}

func NewGameController(logger *slog.Logger, board *entity.Board, console console) *GameController {
	return &GameController{
		logger:  logger.With("component", "game"),
		board:   board,
		console: console,
	}
}

// Play - runs turns until the game is won or drawn. Only an input channel failure returns an error.
func (that *GameController) Play() (entity.Outcome, error) {
	log := that.logger.With("method", "Play")

	that.console.Printf(msgWelcome)

	player := entity.PlayerX
	for {
		that.console.Printf(msgCurrentBoard)
		that.console.RenderBoard(that.board.Rows())
		that.console.Printf(msgTurn, player)

		if err := that.takeTurn(player); err != nil {
			return that.board.Outcome(), fmt.Errorf("player %s turn: %w", player, err)
		}

		outcome := that.board.Outcome()
		switch outcome.Status {
		case entity.StatusWin:
			that.console.Printf(msgWinner, outcome.Winner)
		case entity.StatusDraw:
			that.console.Printf(msgDraw)
		}

		if outcome.IsFinished() {
			log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner.String())

			return outcome, nil
		}

		player = player.Opponent()
	}
}

// takeTurn - asks for coordinates until the board accepts a move.
func (that *GameController) takeTurn(player entity.Player) error {
	log := that.logger.With("method", "takeTurn", "player", player.String())

	for {
		row, err := that.console.ReadCoordinate(promptRow)
		if err != nil {
			if that.reject(log, err) {
				continue
			}
			return err
		}

		col, err := that.console.ReadCoordinate(promptColumn)
		if err != nil {
			if that.reject(log, err) {
				continue
			}
			return err
		}

		err = that.board.ApplyMove(row, col, player)
		if err == nil {
			log.Debug("move applied", "row", row, "col", col)
			return nil
		}

		if !that.reject(log, err) {
			return fmt.Errorf("failed to apply move: %w", err)
		}
	}
}

// reject - reports a recoverable error to the player. It returns false for errors the turn cannot recover from.
func (that *GameController) reject(log *slog.Logger, err error) bool {
	var msg string

	switch {
	case errors.Is(err, apperror.ErrMalformedInput):
		msg = msgMalformedInput
	case errors.Is(err, apperror.ErrOutOfRange):
		msg = msgOutOfRange
	case errors.Is(err, apperror.ErrCellOccupied):
		msg = msgCellOccupied
	default:
		return false
	}

	log.Debug("move rejected", "error", err)
	that.console.Printf(msg)

	return true
}
