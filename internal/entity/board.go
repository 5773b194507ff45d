package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Size is the number of rows and columns on the board.
const Size = 3

// Cell is the content of a single square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return " "
	}
}

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWin     Status = "win"
	StatusDraw    Status = "draw"
)

// Outcome is derived from the board on every call and never stored.
type Outcome struct {
	Status Status
	Winner Player
}

func (that Outcome) IsFinished() bool {
	return that.Status != StatusOngoing
}

type position struct {
	row, col int
}

// winLines lists every line in scan order: rows top-to-bottom, columns
// left-to-right, main diagonal, anti-diagonal.
var winLines = [][Size]position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board holds the 3x3 grid. A cell goes from empty to a mark exactly once.
type Board struct {
	cells [Size][Size]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// ApplyMove - places the player's mark at (row, col). The board is left untouched on error.
func (that *Board) ApplyMove(row, col int, player Player) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfRange, row, col)
	}

	if that.cells[row][col] != CellEmpty {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row][col] = player.Mark()

	return nil
}

// Winner - returns the owner of the first complete line in scan order.
func (that *Board) Winner() (Player, bool) {
	for _, line := range winLines {
		a := that.cells[line[0].row][line[0].col]
		b := that.cells[line[1].row][line[1].col]
		c := that.cells[line[2].row][line[2].col]

		if a != CellEmpty && a == b && b == c {
			return playerOf(a), true
		}
	}

	return 0, false
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == CellEmpty {
				return false
			}
		}
	}

	return true
}

func (that *Board) Outcome() Outcome {
	if winner, ok := that.Winner(); ok {
		return Outcome{Status: StatusWin, Winner: winner}
	}

	// the game continues until all the squares are full
	if that.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusOngoing}
}

// Rows - returns a copy of the grid for rendering.
func (that *Board) Rows() [Size][Size]Cell {
	return that.cells
}
