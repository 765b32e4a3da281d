package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// NewSession - a fresh board with X to move.
func NewSession(id string, humanMark entity.Mark, difficulty entity.Difficulty) entity.Session {
	return entity.Session{
		ID:         id,
		Turn:       entity.PlayerX,
		Status:     entity.StatusInProgress,
		HumanMark:  humanMark,
		Difficulty: difficulty,
	}
}

// ApplyMove - places the mark of the player to move on cell and returns the
// resulting session. The given session is left untouched.
func ApplyMove(session entity.Session, cell int) (entity.Session, error) {
	if err := validateMove(&session, cell); err != nil {
		return session, fmt.Errorf("invalid move: %w", err)
	}

	session.Board[cell] = session.Turn
	updateGameStatus(&session)

	return session, nil
}

// validateMove - checks if the move is valid.
func validateMove(session *entity.Session, cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if session.Board.Status().IsTerminal() {
		return apperror.ErrGameAlreadyOver
	}

	if session.Board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - recomputes the status and passes the turn while the game goes on.
func updateGameStatus(session *entity.Session) {
	session.Status = session.Board.Status()
	if !session.Status.IsTerminal() {
		session.Turn = session.Turn.Opponent()
	}
}
