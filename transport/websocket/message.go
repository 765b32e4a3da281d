package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	actionGameNew        = "game:new"
	actionGameGet        = "game:get"
	actionGameTurn       = "game:turn"
	actionGameThinking   = "game:thinking"
	actionGameReset      = "game:reset"
	actionGameDifficulty = "game:difficulty"
	actionError          = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload - fields a client may send; which are required depends on the action.
type RequestPayload struct {
	GameID     string `json:"game_id,omitempty"`
	Cell       *int   `json:"cell,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type ResponsePayload struct {
	Game    *entity.Session `json:"game,omitempty"`
	Message string          `json:"message,omitempty"`
	Action  string          `json:"request_action,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *connection, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadJSON,
	}

	if err = conn.writeJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendGame(conn *connection, action string, session *entity.Session) error {
	return that.sendMessage(conn, action, ResponsePayload{
		Game:    session,
		Message: session.Message(),
	})
}

func (that *Server) sendError(conn *connection, action, text string) error {
	return that.sendMessage(conn, actionError, ResponsePayload{
		Action: action,
		Error:  text,
	})
}

func decodePayload(msg *Message) (*RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}
