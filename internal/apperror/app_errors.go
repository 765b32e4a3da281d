package apperror

import "errors"

var (
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrNoLegalMove     = errors.New("no legal move")

	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownMark       = errors.New("unknown player mark")
)
