package tictactoe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
)

func newController(st *suite.Suite) *GameController {
	return NewGameController(st.Logger, entity.NewBoard(), st.Console)
}

func TestGameController_Play(t *testing.T) {
	t.Run("Player X wins on the top row", func(t *testing.T) {
		// Given: exactly the input for X:(0,0), O:(1,1), X:(0,1), O:(2,2), X:(0,2)
		st := suite.New(t, suite.Moves(
			[2]int{0, 0}, [2]int{1, 1}, [2]int{0, 1}, [2]int{2, 2}, [2]int{0, 2},
		)...)
		controller := newController(st)

		// When: the game is played
		outcome, err := controller.Play()

		// Then: X wins without asking for more input
		require.NoError(t, err)
		assert.Equal(t, entity.Outcome{Status: entity.StatusWin, Winner: entity.PlayerX}, outcome)

		out := st.Output.String()
		assert.True(t, strings.HasSuffix(out, "\nPlayer X wins!\n"))
		assert.Equal(t, 5, strings.Count(out, promptRow))
		assert.Equal(t, 5, strings.Count(out, promptColumn))
		assert.NotContains(t, out, "draw")
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: moves that fill the board as X,O,X / X,O,O / O,X,X
		st := suite.New(t, suite.Moves(
			[2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 1}, [2]int{1, 0},
			[2]int{1, 2}, [2]int{2, 1}, [2]int{2, 0}, [2]int{2, 2},
		)...)
		controller := newController(st)

		// When: the game is played
		outcome, err := controller.Play()

		// Then: a draw is announced, not a win
		require.NoError(t, err)
		assert.Equal(t, entity.Outcome{Status: entity.StatusDraw}, outcome)
		assert.True(t, strings.HasSuffix(st.Output.String(), "\nIt's a draw!\n"))
		assert.NotContains(t, st.Output.String(), "wins!")
		assert.Equal(t, [entity.Size][entity.Size]entity.Cell{
			{entity.CellX, entity.CellO, entity.CellX},
			{entity.CellX, entity.CellO, entity.CellO},
			{entity.CellO, entity.CellX, entity.CellX},
		}, controller.board.Rows())
	})

	t.Run("Opening output", func(t *testing.T) {
		// Given: no input at all
		st := suite.New(t)
		controller := newController(st)

		// When: the game is played
		_, err := controller.Play()
		require.Error(t, err)

		// Then: the welcome, the empty board and the first prompt were printed
		expected := "Welcome to Tic-Tac-Toe!\n" +
			"\nCurrent board:\n" +
			"         \n         \n         \n" +
			"\nPlayer X's turn.\n" +
			"Enter row (0-2):\n"
		assert.Equal(t, expected, st.Output.String())
	})

	t.Run("Malformed row is re-prompted", func(t *testing.T) {
		// Given: "a" then "0" for the row and "0" for the column
		st := suite.New(t, "a", "0", "0")
		controller := newController(st)

		// When: the game is played until the input runs out
		_, err := controller.Play()
		require.ErrorIs(t, err, apperror.ErrInputClosed)

		// Then: X's move landed at (0,0) after a single rejection
		out := st.Output.String()
		assert.Equal(t, 1, strings.Count(out, msgMalformedInput))
		assert.Equal(t, 1, strings.Count(out, "Player X's turn."))
		assert.Equal(t, 1, strings.Count(out, "Player O's turn."))
		assert.NotContains(t, out, "Invalid move")
		assert.Equal(t, entity.CellX, controller.board.Rows()[0][0])
	})

	t.Run("Malformed column restarts at the row prompt", func(t *testing.T) {
		// Given: row 1, a bad column, then row 2 and column 2
		st := suite.New(t, "1", "b", "2", "2")
		controller := newController(st)

		// When: the game is played until the input runs out
		_, err := controller.Play()
		require.ErrorIs(t, err, apperror.ErrInputClosed)

		// Then: the first row was discarded and X moved to (2,2)
		rows := controller.board.Rows()
		assert.Equal(t, entity.CellX, rows[2][2])
		assert.Equal(t, entity.CellEmpty, rows[1][2])
		assert.Equal(t, 1, strings.Count(st.Output.String(), msgMalformedInput))
	})

	t.Run("Out of range move is re-prompted", func(t *testing.T) {
		// Given: row 3 then a valid move
		st := suite.New(t, "3", "0", "0", "0")
		controller := newController(st)

		// When: the game is played until the input runs out
		_, err := controller.Play()
		require.ErrorIs(t, err, apperror.ErrInputClosed)

		// Then: the out of range message was shown and X still moved first
		out := st.Output.String()
		assert.Equal(t, 1, strings.Count(out, msgOutOfRange))
		assert.NotContains(t, out, msgCellOccupied)
		assert.Equal(t, entity.CellX, controller.board.Rows()[0][0])
	})

	t.Run("Occupied cell is re-prompted", func(t *testing.T) {
		// Given: X takes (0,0), O tries (0,0) and then (1,1)
		st := suite.New(t, "0", "0", "0", "0", "1", "1")
		controller := newController(st)

		// When: the game is played until the input runs out
		_, err := controller.Play()
		require.ErrorIs(t, err, apperror.ErrInputClosed)

		// Then: X keeps (0,0) and O moved to (1,1) on the same turn
		out := st.Output.String()
		assert.Equal(t, 1, strings.Count(out, msgCellOccupied))
		assert.Equal(t, 1, strings.Count(out, "Player O's turn."))

		rows := controller.board.Rows()
		assert.Equal(t, entity.CellX, rows[0][0])
		assert.Equal(t, entity.CellO, rows[1][1])
	})

	t.Run("Very long line is re-prompted", func(t *testing.T) {
		// Given: a 70 000 character line before X's winning moves
		lines := append([]string{strings.Repeat("a", 70_000)}, suite.Moves(
			[2]int{0, 0}, [2]int{1, 1}, [2]int{0, 1}, [2]int{2, 2}, [2]int{0, 2},
		)...)
		st := suite.New(t, lines...)
		controller := newController(st)

		// When: the game is played
		outcome, err := controller.Play()

		// Then: the line is rejected as malformed and X still wins
		require.NoError(t, err)
		assert.Equal(t, entity.Outcome{Status: entity.StatusWin, Winner: entity.PlayerX}, outcome)
		assert.Equal(t, 1, strings.Count(st.Output.String(), msgMalformedInput))
	})

	t.Run("Leading plus sign is accepted", func(t *testing.T) {
		// Given: X's move typed as "+0" and "0"
		st := suite.New(t, "+0", "0")
		controller := newController(st)

		// When: the game is played until the input runs out
		_, err := controller.Play()
		require.ErrorIs(t, err, apperror.ErrInputClosed)

		// Then: the move is applied without a rejection
		assert.NotContains(t, st.Output.String(), msgMalformedInput)
		assert.Equal(t, entity.CellX, controller.board.Rows()[0][0])
	})

	t.Run("Input channel failure stops the game", func(t *testing.T) {
		// Given: input that ends in the middle of X's move
		st := suite.New(t, "1")
		controller := newController(st)

		// When: the game is played
		outcome, err := controller.Play()

		// Then: the failure is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, entity.StatusOngoing, outcome.Status)
		assert.Equal(t, *entity.NewBoard(), *controller.board)
	})

	t.Run("Outcome is logged", func(t *testing.T) {
		// Given: a short game that X wins on the left column
		st := suite.New(t, suite.Moves(
			[2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 0},
		)...)
		controller := newController(st)

		// When: the game is played
		_, err := controller.Play()
		require.NoError(t, err)

		// Then: the moves and the result were logged
		logs := st.Logs.String()
		assert.Contains(t, logs, `"msg":"move applied"`)
		assert.Contains(t, logs, `"msg":"game finished"`)
		assert.Contains(t, logs, `"winner":"X"`)
	})
}
