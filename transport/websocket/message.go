package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

const ActionGameState = "game:state"

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func newStateMessage(state entity.GameState) ([]byte, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: ActionGameState, Payload: payload})
}
