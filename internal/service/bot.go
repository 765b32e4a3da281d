package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

var ErrNotComputerTurn = errors.New("not the computer's turn")

type BotService interface {
	SelectMove(session entity.Session) (int, error)
	MakeTurn(session entity.Session) (entity.Session, error)
}

type botService struct {
	logger *slog.Logger
	intn   func(n int) int
}

// NewBotService - intn picks the random cell for the easy tier; nil means rand.IntN.
func NewBotService(logger *slog.Logger, intn func(n int) int) BotService {
	if intn == nil {
		intn = rand.Intn //nolint: gosec // it's ok
	}

	return &botService{
		logger: logger.With("component", "bot"),
		intn:   intn,
	}
}

// SelectMove - chooses the computer's cell according to the session difficulty.
func (that *botService) SelectMove(session entity.Session) (int, error) {
	switch session.Difficulty {
	case entity.DifficultyEasy:
		return tictactoe.SelectRandomMove(session.Board, that.intn)
	case entity.DifficultyHard:
		board := session.Board
		// the search always maximizes for O
		if session.ComputerMark() == entity.PlayerX {
			board = board.Swapped()
		}
		return tictactoe.SelectBestMove(board)
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, session.Difficulty)
	}
}

func (that *botService) MakeTurn(session entity.Session) (entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", session.ID)

	if session.IsFinished() {
		return session, apperror.ErrGameAlreadyOver
	}

	if !session.IsComputerTurn() {
		return session, fmt.Errorf("%w: turn %s", ErrNotComputerTurn, session.Turn)
	}

	cell, err := that.SelectMove(session)
	if err != nil {
		return session, fmt.Errorf("bot failed to select cell: %w", err)
	}

	next, err := tictactoe.ApplyMove(session, cell)
	if err != nil {
		return session, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "cell", cell, "difficulty", session.Difficulty, "status", next.Status)

	return next, nil
}
