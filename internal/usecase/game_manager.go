package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	Update(ctx context.Context, id string, fn func(session *entity.Session) error) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type botDep interface {
	MakeTurn(session entity.Session) (entity.Session, error)
}

type GameManager struct {
	logger *slog.Logger

	gameRepo gameRepoDep
	bot      botDep

	humanMark entity.Mark
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepoDep, bot botDep, humanMark entity.Mark) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		bot:      bot,

		humanMark: humanMark,
	}
}

// NewGame - starts a game against the computer. The computer opens when the human plays O.
func (that *GameManager) NewGame(ctx context.Context, difficulty entity.Difficulty) (*entity.Session, error) {
	session := tictactoe.NewSession(pkg.GenerateGameID(), that.humanMark, difficulty)

	return that.start(ctx, session)
}

// GetGame - also finishes a computer turn left pending by an interrupted request.
func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if session.IsComputerTurn() {
		that.logger.Warn("resuming pending computer turn", "method", "GetGame", "gameID", id)
		return that.PlayComputer(ctx, id)
	}

	return session, nil
}

// MakeTurn - applies the human move on cell and answers with the computer move
// while the game is still in progress. Both moves are stored together.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	session, err := that.updateGame(ctx, id, func(session *entity.Session) error {
		if err := that.playHuman(session, cell); err != nil {
			return err
		}

		return that.playComputer(session)
	})
	if err != nil {
		return nil, err
	}

	if session.IsFinished() {
		log.Info("game finished", "status", session.Status)
	}

	return session, nil
}

// PlayHuman - applies and stores the human move only.
func (that *GameManager) PlayHuman(ctx context.Context, id string, cell int) (*entity.Session, error) {
	if _, err := that.GetGame(ctx, id); err != nil {
		return nil, err
	}

	return that.updateGame(ctx, id, func(session *entity.Session) error {
		return that.playHuman(session, cell)
	})
}

// PlayComputer - applies and stores the computer move when it is the computer's turn.
func (that *GameManager) PlayComputer(ctx context.Context, id string) (*entity.Session, error) {
	log := that.logger.With("method", "PlayComputer", "gameID", id)

	session, err := that.updateGame(ctx, id, that.playComputer)
	if err != nil {
		return nil, err
	}

	if session.IsFinished() {
		log.Info("game finished by computer turn", "status", session.Status)
	}

	return session, nil
}

// Reset - replaces the session with a fresh board, keeping its ID and difficulty.
// The old game stays stored when the new one cannot be started.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.Session, error) {
	return that.updateGame(ctx, id, func(session *entity.Session) error {
		*session = tictactoe.NewSession(id, that.humanMark, session.Difficulty)

		return that.playComputer(session)
	})
}

// SetDifficulty - takes effect from the next computer move.
func (that *GameManager) SetDifficulty(ctx context.Context, id string, difficulty entity.Difficulty) (*entity.Session, error) {
	return that.updateGame(ctx, id, func(session *entity.Session) error {
		session.Difficulty = difficulty
		return nil
	})
}

// DeleteGame - forgets the game before its TTL runs out.
func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *GameManager) start(ctx context.Context, session entity.Session) (*entity.Session, error) {
	log := that.logger.With("method", "start", "gameID", session.ID)

	if err := that.playComputer(&session); err != nil {
		return nil, err
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, &session); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game started", "difficulty", session.Difficulty, "humanMark", session.HumanMark)

	return &session, nil
}

func (that *GameManager) updateGame(ctx context.Context, id string, fn func(session *entity.Session) error) (*entity.Session, error) {
	session, err := that.gameRepo.Update(ctx, id, fn)
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return session, nil
}

// playHuman - a computer move still pending is played first.
func (that *GameManager) playHuman(session *entity.Session, cell int) error {
	if err := that.playComputer(session); err != nil {
		return err
	}

	if session.IsFinished() {
		return apperror.ErrGameAlreadyOver
	}

	if !session.IsHumanTurn() {
		return apperror.ErrNotYourTurn
	}

	next, err := tictactoe.ApplyMove(*session, cell)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	*session = next

	return nil
}

// playComputer - no-op unless the computer is to move.
func (that *GameManager) playComputer(session *entity.Session) error {
	if !session.IsComputerTurn() {
		return nil
	}

	next, err := that.bot.MakeTurn(*session)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	*session = next

	return nil
}
