package syncclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

const actionGameState = "game:state"

type pushMessage struct {
	Action string `json:"action"`
}

// WatchURL turns the REST base url into the websocket endpoint on the same host.
func WatchURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse server url: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/ws"

	return u.String(), nil
}

// Watch listens for change notifications and refreshes on each one. The pushed payload is
// only a hint; the view always comes from a fresh fetch. Watch returns when ctx is done or
// the connection drops.
func (that *SyncClient) Watch(ctx context.Context, wsURL string, onChange func(entity.ViewModel)) error {
	log := that.logger.With("method", "Watch")

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", wsURL, networkError(err))
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("watch connection lost: %w", networkError(err))
		}

		var msg pushMessage
		if err = json.Unmarshal(data, &msg); err != nil {
			log.Warn("skipping malformed push message", "error", err)
			continue
		}

		if msg.Action != actionGameState {
			continue
		}

		if err = that.Refresh(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}

			log.Error("refresh after push failed", "error", err)
			continue
		}

		if onChange != nil {
			onChange(that.View())
		}
	}
}
