package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"AtsAssistant/entity"
	"AtsAssistant/internal/lib/sl"
)

const replyTimeout = 90 * time.Second

// ClientMessageHandler handles chat events coming from browser clients.
type ClientMessageHandler interface {
	SendMessage(ctx context.Context, sessionID, text string) (*entity.ChatReply, error)
	ResetConversation(ctx context.Context, sessionID string) entity.ChatMessage
}

// Event is the frame exchanged with browser clients.
type Event struct {
	Type string      `json:"type"` // "typing", "message", "reset", "error"
	Data interface{} `json:"data,omitempty"`
}

type sessionEvent struct {
	session string
	event   *Event
}

// Hub keeps the connected clients and routes events to the clients of one session.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan sessionEvent
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	handler    ClientMessageHandler
	log        *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan sessionEvent, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.With(sl.Module("ws.hub")),
	}
}

func (h *Hub) SetHandler(handler ClientMessageHandler) {
	h.handler = handler
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case se := <-h.broadcast:
			data, err := json.Marshal(se.event)
			if err != nil {
				h.log.Error("marshal event", sl.Err(err))
				continue
			}
			h.mu.Lock()
			for client := range h.clients {
				if client.session != se.session {
					continue
				}
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Clients returns the number of connections bound to the session.
func (h *Hub) Clients(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for client := range h.clients {
		if client.session == sessionID {
			n++
		}
	}
	return n
}

func (h *Hub) Send(sessionID string, event *Event) {
	h.broadcast <- sessionEvent{session: sessionID, event: event}
}

func (h *Hub) SendTyping(sessionID string) {
	h.Send(sessionID, &Event{Type: "typing"})
}

func (h *Hub) SendMessage(sessionID string, msg entity.ChatMessage) {
	h.Send(sessionID, &Event{Type: "message", Data: msg})
}

// clientEvent represents an incoming WebSocket message from a browser client.
type clientEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// HandleClientMessage parses and dispatches an incoming message from a client.
func (h *Hub) HandleClientMessage(sessionID string, raw []byte) {
	if h.handler == nil {
		return
	}

	var event clientEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		h.log.Warn("failed to parse client ws message", sl.Err(err))
		return
	}

	logger := h.log.With(slog.String("session", sessionID), slog.String("type", event.Type))

	switch event.Type {
	case "message":
		var data struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(event.Data, &data); err != nil {
			logger.Warn("failed to parse message data", sl.Err(err))
			return
		}

		h.SendTyping(sessionID)

		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		reply, err := h.handler.SendMessage(ctx, sessionID, data.Text)
		if err != nil {
			logger.Debug("message rejected", sl.Err(err))
			h.Send(sessionID, &Event{Type: "error", Data: err.Error()})
			return
		}
		h.SendMessage(sessionID, reply.Answer)

	case "reset":
		greeting := h.handler.ResetConversation(context.Background(), sessionID)
		h.Send(sessionID, &Event{Type: "reset", Data: greeting})

	default:
		logger.Debug("unknown client event")
	}
}
