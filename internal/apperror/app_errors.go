package apperror

import "errors"

var (
	ErrMalformedInput = errors.New("input is not a number")
	ErrOutOfRange     = errors.New("row or column out of range")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInputClosed    = errors.New("input channel closed")

	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownColorMode = errors.New("unknown color mode")
)
