package entity

// Player identifies who moves. The zero value means "no player".
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Mark - returns the cell value the player writes to the board.
func (that Player) Mark() Cell {
	switch that {
	case PlayerX:
		return CellX
	case PlayerO:
		return CellO
	default:
		return CellEmpty
	}
}

// Opponent - returns the player whose turn comes next.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	if that.Mark() == CellEmpty {
		return ""
	}
	return that.Mark().String()
}

func playerOf(mark Cell) Player {
	switch mark {
	case CellX:
		return PlayerX
	case CellO:
		return PlayerO
	default:
		return 0
	}
}
