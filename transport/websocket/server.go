package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

type Server struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// New builds the /ws handler. allowOrigins empty means any origin is accepted.
func New(hub *Hub, allowOrigins []string) *Server {
	return &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowOrigins),
		},
	}
}

// Register mounts the websocket endpoint on the echo router.
func (that *Server) Register(e *echo.Echo) {
	e.GET("/ws", that.handleWatch)
}

func (that *Server) handleWatch(ctx echo.Context) error {
	conn, err := that.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// the upgrader has already written the http error
		return nil
	}

	that.hub.serve(that.hub.add(conn))

	return nil
}

func checkOrigin(allowOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowOrigins) == 0 {
			return true
		}

		for _, allowed := range allowOrigins {
			if allowed == "*" || allowed == origin {
				return true
			}
		}

		return false
	}
}
