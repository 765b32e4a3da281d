package websocket

import (
	"context"
	"errors"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *connection) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(conn, msg.Action, "malformed payload")
	}

	if payload.Difficulty == "" {
		payload.Difficulty = string(that.defaultDifficulty)
	}

	difficulty, err := entity.ParseDifficulty(payload.Difficulty)
	if err != nil {
		return that.sendError(conn, msg.Action, err.Error())
	}

	session, err := that.uGame.NewGame(ctx, difficulty)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.sendGame(conn, msg.Action, session)
}

func (that *Server) handleGetGame(ctx context.Context, msg *Message, conn *connection) error {
	payload, err := that.requireGameID(msg, conn)
	if payload == nil {
		return err
	}

	session, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.sendGame(conn, msg.Action, session)
}

// handleGameTurn - sends the board after the human move, pauses for the
// thinking delay, then sends the board after the computer reply.
func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameTurn")

	payload, err := that.requireGameID(msg, conn)
	if payload == nil {
		return err
	}

	if payload.Cell == nil {
		return that.sendError(conn, msg.Action, "cell is required")
	}

	session, err := that.uGame.PlayHuman(ctx, payload.GameID, *payload.Cell)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	if !session.IsComputerTurn() {
		return that.sendGame(conn, actionGameTurn, session)
	}

	if err = that.sendGame(conn, actionGameThinking, session); err != nil {
		return err
	}

	// the human move is already stored, so the reply is played even on shutdown
	if err = sleep(ctx, that.thinkingDelay); err != nil {
		log.Info("thinking delay cut short", "gameID", payload.GameID, "reason", err)
	}

	session, err = that.uGame.PlayComputer(context.WithoutCancel(ctx), payload.GameID)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	log.Debug("turn played", "gameID", session.ID, "status", session.Status)

	return that.sendGame(conn, actionGameTurn, session)
}

func (that *Server) handleReset(ctx context.Context, msg *Message, conn *connection) error {
	payload, err := that.requireGameID(msg, conn)
	if payload == nil {
		return err
	}

	session, err := that.uGame.Reset(ctx, payload.GameID)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.sendGame(conn, msg.Action, session)
}

func (that *Server) handleDifficulty(ctx context.Context, msg *Message, conn *connection) error {
	payload, err := that.requireGameID(msg, conn)
	if payload == nil {
		return err
	}

	difficulty, err := entity.ParseDifficulty(payload.Difficulty)
	if err != nil {
		return that.sendError(conn, msg.Action, err.Error())
	}

	session, err := that.uGame.SetDifficulty(ctx, payload.GameID, difficulty)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.sendGame(conn, msg.Action, session)
}

// requireGameID - decodes the payload; on failure the client is told and nil is returned.
func (that *Server) requireGameID(msg *Message, conn *connection) (*RequestPayload, error) {
	payload, err := decodePayload(msg)
	if err != nil {
		return nil, that.sendError(conn, msg.Action, "malformed payload")
	}

	if payload.GameID == "" {
		return nil, that.sendError(conn, msg.Action, "game_id is required")
	}

	return payload, nil
}

// replyError - tells the client about rejected moves; unexpected failures are also returned for logging.
func (that *Server) replyError(conn *connection, action string, err error) error {
	switch {
	case errors.Is(err, repository.ErrGameNotFound),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameAlreadyOver),
		errors.Is(err, apperror.ErrNotYourTurn):
		return that.sendError(conn, action, err.Error())
	}

	if sendErr := that.sendError(conn, action, "internal error"); sendErr != nil {
		return sendErr
	}

	return err
}

func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
