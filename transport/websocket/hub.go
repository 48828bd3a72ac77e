package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

const (
	sendBufferSize = 8
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
)

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (that *subscriber) close() {
	that.once.Do(func() { close(that.send) })
}

// Hub fans committed game states out to every connected watcher.
type Hub struct {
	logger *slog.Logger

	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger.With("component", "ws_hub"),
		subscribers: make(map[*subscriber]struct{}),
	}
}

// Publish never blocks: a watcher whose buffer is full is disconnected.
func (that *Hub) Publish(state entity.GameState) {
	log := that.logger.With("method", "Publish")

	msg, err := newStateMessage(state)
	if err != nil {
		log.Error("failed to marshal state", "error", err)
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for sub := range that.subscribers {
		select {
		case sub.send <- msg:
		default:
			log.Warn("dropping slow subscriber")
			delete(that.subscribers, sub)
			sub.close()
		}
	}
}

func (that *Hub) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.subscribers)
}

func (that *Hub) add(conn *websocket.Conn) *subscriber {
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBufferSize)}

	that.mu.Lock()
	that.subscribers[sub] = struct{}{}
	that.mu.Unlock()

	return sub
}

func (that *Hub) remove(sub *subscriber) {
	that.mu.Lock()
	if _, ok := that.subscribers[sub]; ok {
		delete(that.subscribers, sub)
		sub.close()
	}
	that.mu.Unlock()
}

// serve runs until the connection closes. Reads only drain control frames.
func (that *Hub) serve(sub *subscriber) {
	log := that.logger.With("method", "serve", "remote", sub.conn.RemoteAddr().String())
	defer func() {
		that.remove(sub)
		_ = sub.conn.Close()
	}()

	go that.writeLoop(sub)

	sub.conn.SetReadLimit(512)
	_ = sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		return sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}
	}
}

func (that *Hub) writeLoop(sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = sub.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = sub.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := sub.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				that.logger.Debug("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
