package repository

import (
	"context"
	"sort"
	"sync"

	"AtsAssistant/entity"
)

// MemoryHistory is the in-process stand-in for the Mongo chat history,
// with the same per-session bound and ordering.
type MemoryHistory struct {
	mu       sync.RWMutex
	sessions map[string][]entity.ChatMessage
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{sessions: make(map[string][]entity.ChatMessage)}
}

func (h *MemoryHistory) SaveChatMessage(_ context.Context, msg entity.ChatMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	msgs := append(h.sessions[msg.SessionID], msg)
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	if len(msgs) > maxMessagesPerSession {
		msgs = msgs[len(msgs)-maxMessagesPerSession:]
	}
	h.sessions[msg.SessionID] = msgs
	return nil
}

func (h *MemoryHistory) GetChatMessages(_ context.Context, sessionID string, limit, offset int) ([]entity.ChatMessage, error) {
	if limit <= 0 {
		return []entity.ChatMessage{}, nil
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	msgs := h.sessions[sessionID]
	out := make([]entity.ChatMessage, 0, limit)
	for i := len(msgs) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, msgs[i])
	}
	return out, nil
}

func (h *MemoryHistory) DeleteChatMessages(_ context.Context, sessionID string) error {
	h.mu.Lock()
	delete(h.sessions, sessionID)
	h.mu.Unlock()
	return nil
}
