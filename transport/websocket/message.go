package websocket

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const (
	actionConnect  = "connect"
	actionGameNew  = "game:new"
	actionGameTurn = "game:turn"
	actionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Mark   string         `json:"mark,omitempty"`
	Row    *int           `json:"row,omitempty"`
	Col    *int           `json:"col,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadBytes}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action, message string) error {
	return that.sendMessage(conn, action, Payload{Error: message})
}
