package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"AtsAssistant/internal/lib/api/cont"
	"AtsAssistant/internal/lib/sl"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 16 * 1024
	// frames waiting for the session worker; more are rejected
	inboundQueue = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is a single WebSocket connection of a browser session.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	inbound chan []byte
	session string
}

// readPump pumps messages from the WebSocket connection to the hub.
// It handles ping/pong keepalive and detects disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	defer close(c.inbound)

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		select {
		case c.inbound <- raw:
		default:
			c.hub.log.With(slog.String("session", c.session)).Warn("inbound queue full, frame dropped")
			c.hub.Send(c.session, &Event{Type: "error", Data: "too many pending messages"})
		}
	}
}

// workPump handles the client's frames one at a time, in arrival order.
func (c *Client) workPump() {
	for raw := range c.inbound {
		c.hub.HandleClientMessage(c.session, raw)
	}
}

// writePump pumps messages from the hub to the WebSocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs upgrades the request and binds the connection to the session
// resolved by the session middleware.
func ServeWs(hub *Hub, log *slog.Logger, w http.ResponseWriter, r *http.Request) {
	sessionID := cont.GetSession(r.Context())
	if sessionID == "" {
		http.Error(w, "Session required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("websocket upgrade failed", sl.Err(err))
		return
	}

	client := &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 256),
		inbound: make(chan []byte, inboundQueue),
		session: sessionID,
	}

	hub.register <- client

	go client.writePump()
	go client.workPump()
	go client.readPump()
}
