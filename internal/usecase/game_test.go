package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-solo/mocks/usecase"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

var (
	errRedisDown    = errors.New("redis down")
	errGameNotFound = errors.New("game not found")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func anySession() interface{} {
	return mock.AnythingOfType("*entity.Session")
}

// expectStoredUpdates - Update applies fn to a copy of stored and keeps it only when fn succeeds.
func expectStoredUpdates(mockGameRepo *mockedUseCase.MockgameRepoDep, stored *entity.Session) *mockedUseCase.MockgameRepoDep_Update_Call {
	return mockGameRepo.EXPECT().
		Update(mock.Anything, stored.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, fn func(*entity.Session) error) (*entity.Session, error) {
			current := *stored
			if err := fn(&current); err != nil {
				return nil, err
			}

			*stored = current
			updated := current

			return &updated, nil
		})
}

func expectStoredReads(mockGameRepo *mockedUseCase.MockgameRepoDep, stored *entity.Session) *mockedUseCase.MockgameRepoDep_GetByID_Call {
	return mockGameRepo.EXPECT().
		GetByID(mock.Anything, stored.ID).
		RunAndReturn(func(context.Context, string) (*entity.Session, error) {
			current := *stored
			return &current, nil
		})
}

func TestGameManager_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and stores a fresh game", func(t *testing.T) {
		// Given: a repository that accepts the new session
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockBot := mockedUseCase.NewMockbotDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockBot, entity.PlayerX)

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, anySession()).
			Return(nil).
			Once()

		// When: starting a hard game
		session, err := manager.NewGame(ctx, entity.DifficultyHard)

		// Then: the human moves first on an empty board
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, entity.Board{}, session.Board)
		assert.Equal(t, entity.PlayerX, session.Turn)
		assert.Equal(t, entity.DifficultyHard, session.Difficulty)
		assert.Equal(t, entity.StatusInProgress, session.Status)
	})

	t.Run("Computer opens when the human plays O", func(t *testing.T) {
		// Given: the human is configured as O
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockBot := mockedUseCase.NewMockbotDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockBot, entity.PlayerO)

		mockBot.EXPECT().
			MakeTurn(mock.AnythingOfType("entity.Session")).
			RunAndReturn(func(session entity.Session) (entity.Session, error) {
				session.Board[0] = x
				session.Turn = o
				return session, nil
			}).
			Once()

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, anySession()).
			Return(nil).
			Once()

		// When: starting a game
		session, err := manager.NewGame(ctx, entity.DifficultyEasy)

		// Then: the computer already played and the human is to move
		require.NoError(t, err)
		assert.Equal(t, x, session.Board[0])
		assert.True(t, session.IsHumanTurn())
	})

	t.Run("Returns error if the repository fails", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockedUseCase.NewMockbotDep(t), entity.PlayerX)

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, anySession()).
			Return(errRedisDown).
			Once()

		session, err := manager.NewGame(ctx, entity.DifficultyHard)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, session)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Human move is answered by the computer", func(t *testing.T) {
		// Given: a stored game where the human is to move
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		bot := service.NewBotService(discardLogger(), nil)
		manager := NewGameManager(discardLogger(), mockGameRepo, bot, entity.PlayerX)

		stored := &entity.Session{ID: "game1", Turn: x, HumanMark: x, Difficulty: entity.DifficultyHard}
		expectStoredUpdates(mockGameRepo, stored).Once()

		// When: the human takes a corner
		session, err := manager.MakeTurn(ctx, "game1", 0)

		// Then: both moves are stored in one update and the human is to move again
		require.NoError(t, err)
		assert.Equal(t, entity.Board{x, e, e, e, o, e, e, e, e}, session.Board)
		assert.Equal(t, x, session.Turn)
		assert.Equal(t, *stored, *session)
	})

	t.Run("Winning human move skips the computer", func(t *testing.T) {
		// Given: the human can complete the top row
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockBot := mockedUseCase.NewMockbotDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockBot, entity.PlayerX)

		stored := &entity.Session{
			ID:         "game1",
			Board:      entity.Board{x, x, e, o, o, e, e, e, e},
			Turn:       x,
			HumanMark:  x,
			Difficulty: entity.DifficultyHard,
		}
		expectStoredUpdates(mockGameRepo, stored).Once()

		// When: the human plays the winning cell
		session, err := manager.MakeTurn(ctx, "game1", 2)

		// Then: the game is won and the bot was never asked
		require.NoError(t, err)
		assert.Equal(t, entity.StatusXWins, session.Status)
		assert.Equal(t, "You win!", session.Message())
	})

	t.Run("Occupied cell is rejected without storing", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockedUseCase.NewMockbotDep(t), entity.PlayerX)

		board := entity.Board{e, e, e, e, x, e, e, e, o}
		stored := &entity.Session{ID: "game1", Board: board, Turn: x, HumanMark: x}
		expectStoredUpdates(mockGameRepo, stored).Once()

		_, err := manager.MakeTurn(ctx, "game1", 4)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, board, stored.Board)
	})

	t.Run("Finished game is rejected", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockedUseCase.NewMockbotDep(t), entity.PlayerX)

		stored := &entity.Session{
			ID:        "game1",
			Board:     entity.Board{x, x, x, o, o, e, e, e, e},
			Turn:      x,
			Status:    entity.StatusXWins,
			HumanMark: x,
		}
		expectStoredUpdates(mockGameRepo, stored).Once()

		_, err := manager.MakeTurn(ctx, "game1", 5)

		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	})

	t.Run("Pending computer turn is played before the human move", func(t *testing.T) {
		// Given: a game stored right after the human move, without the computer reply
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		bot := service.NewBotService(discardLogger(), nil)
		manager := NewGameManager(discardLogger(), mockGameRepo, bot, entity.PlayerX)

		stored := &entity.Session{ID: "game1", Board: entity.Board{x}, Turn: o, HumanMark: x, Difficulty: entity.DifficultyHard}
		expectStoredUpdates(mockGameRepo, stored).Once()

		// When: the human moves again
		session, err := manager.MakeTurn(ctx, "game1", 8)

		// Then: the missing reply is played first instead of rejecting the human
		require.NoError(t, err)
		assert.Equal(t, o, session.Board[4])
		assert.Equal(t, x, session.Board[8])
		assert.Equal(t, x, session.Turn)
	})

	t.Run("Bot failure leaves the stored game unchanged", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockBot := mockedUseCase.NewMockbotDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockBot, entity.PlayerX)

		stored := &entity.Session{ID: "game1", Turn: x, HumanMark: x, Difficulty: entity.DifficultyHard}
		expectStoredUpdates(mockGameRepo, stored).Once()

		errBot := errors.New("bot down")
		mockBot.EXPECT().
			MakeTurn(mock.AnythingOfType("entity.Session")).
			Return(entity.Session{}, errBot).
			Once()

		_, err := manager.MakeTurn(ctx, "game1", 0)

		// Then: the human move is not stored without its reply
		require.ErrorIs(t, err, errBot)
		assert.Equal(t, entity.Board{}, stored.Board)
		assert.Equal(t, x, stored.Turn)
	})

	t.Run("Unknown game", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockedUseCase.NewMockbotDep(t), entity.PlayerX)

		mockGameRepo.EXPECT().
			Update(mock.Anything, "missing", mock.Anything).
			Return((*entity.Session)(nil), errGameNotFound).
			Once()

		session, err := manager.MakeTurn(ctx, "missing", 0)

		require.ErrorIs(t, err, errGameNotFound)
		assert.Nil(t, session)
	})
}

func TestGameManager_PlayHumanAndComputer(t *testing.T) {
	ctx := context.Background()

	t.Run("Moves are stored one at a time", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		bot := service.NewBotService(discardLogger(), nil)
		manager := NewGameManager(discardLogger(), mockGameRepo, bot, entity.PlayerX)

		stored := &entity.Session{ID: "game1", Turn: x, HumanMark: x, Difficulty: entity.DifficultyHard}
		expectStoredReads(mockGameRepo, stored)
		expectStoredUpdates(mockGameRepo, stored).Twice()

		// When: the human plays
		session, err := manager.PlayHuman(ctx, "game1", 0)

		// Then: only the human move is stored and the computer is to move
		require.NoError(t, err)
		assert.Equal(t, entity.Board{x}, stored.Board)
		assert.Equal(t, "AI is thinking...", session.Message())

		// When: the computer plays
		session, err = manager.PlayComputer(ctx, "game1")

		// Then: the reply is stored
		require.NoError(t, err)
		assert.Equal(t, o, stored.Board[4])
		assert.Equal(t, *stored, *session)
	})

	t.Run("Reading a game finishes an interrupted computer turn", func(t *testing.T) {
		// Given: the human move was stored but the reply never ran
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		bot := service.NewBotService(discardLogger(), nil)
		manager := NewGameManager(discardLogger(), mockGameRepo, bot, entity.PlayerX)

		stored := &entity.Session{ID: "game1", Board: entity.Board{x}, Turn: o, HumanMark: x, Difficulty: entity.DifficultyHard}
		expectStoredReads(mockGameRepo, stored).Once()
		expectStoredUpdates(mockGameRepo, stored).Once()

		// When: the game is read back
		session, err := manager.GetGame(ctx, "game1")

		// Then: the reply is played and stored, and the human can move again
		require.NoError(t, err)
		assert.Equal(t, o, session.Board[4])
		assert.True(t, session.IsHumanTurn())
		assert.Equal(t, *stored, *session)
	})

	t.Run("Human move after an interrupted turn is accepted", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		bot := service.NewBotService(discardLogger(), nil)
		manager := NewGameManager(discardLogger(), mockGameRepo, bot, entity.PlayerX)

		stored := &entity.Session{ID: "game1", Board: entity.Board{x}, Turn: o, HumanMark: x, Difficulty: entity.DifficultyHard}
		expectStoredReads(mockGameRepo, stored).Once()
		expectStoredUpdates(mockGameRepo, stored).Twice()

		session, err := manager.PlayHuman(ctx, "game1", 8)

		require.NoError(t, err)
		assert.Equal(t, o, session.Board[4])
		assert.Equal(t, x, session.Board[8])
		assert.Equal(t, o, session.Turn)
	})

	t.Run("Computer turn out of order is a no-op", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockedUseCase.NewMockbotDep(t), entity.PlayerX)

		stored := &entity.Session{ID: "game1", Turn: x, HumanMark: x, Difficulty: entity.DifficultyHard}
		expectStoredUpdates(mockGameRepo, stored).Once()

		session, err := manager.PlayComputer(ctx, "game1")

		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, session.Board)
	})
}

func TestGameManager_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh board keeps ID and difficulty", func(t *testing.T) {
		// Given: a finished easy game
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockedUseCase.NewMockbotDep(t), entity.PlayerX)

		stored := &entity.Session{
			ID:         "game1",
			Board:      entity.Board{o, o, o, x, x, e, x, e, e},
			Status:     entity.StatusOWins,
			Turn:       o,
			HumanMark:  x,
			Difficulty: entity.DifficultyEasy,
		}
		expectStoredUpdates(mockGameRepo, stored).Once()

		// When: resetting it
		session, err := manager.Reset(ctx, "game1")

		// Then: the stored board is overwritten in place, the ID and difficulty are kept
		require.NoError(t, err)
		assert.Equal(t, "game1", session.ID)
		assert.Equal(t, entity.Board{}, session.Board)
		assert.Equal(t, entity.DifficultyEasy, session.Difficulty)
		assert.Equal(t, entity.StatusInProgress, session.Status)
		assert.Equal(t, x, session.Turn)
		assert.Equal(t, *stored, *session)
	})

	t.Run("Failed restart keeps the old game", func(t *testing.T) {
		// Given: the computer opens but the bot fails
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockBot := mockedUseCase.NewMockbotDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockBot, entity.PlayerO)

		board := entity.Board{x, o, x, e, o, e, e, e, e}
		stored := &entity.Session{ID: "game1", Board: board, Turn: x, HumanMark: o, Difficulty: entity.DifficultyHard}
		expectStoredUpdates(mockGameRepo, stored).Once()

		errBot := errors.New("bot down")
		mockBot.EXPECT().
			MakeTurn(mock.AnythingOfType("entity.Session")).
			Return(entity.Session{}, errBot).
			Once()

		// When: resetting
		_, err := manager.Reset(ctx, "game1")

		// Then: the error is returned and the previous game is still there
		require.ErrorIs(t, err, errBot)
		assert.Equal(t, board, stored.Board)
	})
}

func TestGameManager_SetDifficulty(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
	manager := NewGameManager(discardLogger(), mockGameRepo, mockedUseCase.NewMockbotDep(t), entity.PlayerX)

	stored := &entity.Session{ID: "game1", Turn: x, HumanMark: x, Difficulty: entity.DifficultyHard}
	expectStoredUpdates(mockGameRepo, stored).Once()

	session, err := manager.SetDifficulty(ctx, "game1", entity.DifficultyEasy)

	require.NoError(t, err)
	assert.Equal(t, entity.DifficultyEasy, session.Difficulty)
	assert.Equal(t, entity.DifficultyEasy, stored.Difficulty)
}

func TestGameManager_DeleteGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the stored game", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockedUseCase.NewMockbotDep(t), entity.PlayerX)

		mockGameRepo.EXPECT().
			DeleteByID(mock.Anything, "game1").
			Return(nil).
			Once()

		require.NoError(t, manager.DeleteGame(ctx, "game1"))
	})

	t.Run("Unknown game", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(discardLogger(), mockGameRepo, mockedUseCase.NewMockbotDep(t), entity.PlayerX)

		mockGameRepo.EXPECT().
			DeleteByID(mock.Anything, "missing").
			Return(errGameNotFound).
			Once()

		require.ErrorIs(t, manager.DeleteGame(ctx, "missing"), errGameNotFound)
	})
}
