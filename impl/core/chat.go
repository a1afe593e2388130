package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"AtsAssistant/ai"
	"AtsAssistant/entity"
	"AtsAssistant/internal/lib/sl"
)

const (
	chatResultOk     = "ok"
	chatResultFailed = "failed"
)

// SendMessage forwards text to the assistant. A transport failure is not an
// error for the caller: the reply carries the connection error text and Failed.
func (c *Core) SendMessage(ctx context.Context, sessionID, text string) (*entity.ChatReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if c.ass == nil {
		return nil, ErrAssistantUnavailable
	}

	question := newMessage(sessionID, entity.RoleUser, text)
	c.saveMessage(ctx, question)

	reply := &entity.ChatReply{Question: &question}

	answer, err := c.ass.Send(ctx, sessionID, text)
	if err != nil {
		c.log.With(
			slog.String("session", sessionID),
			sl.Err(err),
		).Error("assistant send")
		answer = ai.ConnectionErrorReply
		reply.Failed = true
	}
	c.observeChat(reply.Failed)

	reply.Answer = newMessage(sessionID, entity.RoleModel, answer)
	c.saveMessage(ctx, reply.Answer)

	return reply, nil
}

// SelectSchool asks the assistant for the full record of a catalog school.
func (c *Core) SelectSchool(ctx context.Context, sessionID, name string) (*entity.ChatReply, error) {
	school, ok := c.catalog.FindByName(strings.TrimSpace(name))
	if !ok {
		return nil, ErrSchoolNotFound
	}
	return c.SendMessage(ctx, sessionID, ai.SchoolInfoPrompt(school.Name))
}

// ResetConversation forgets the session's conversation and returns the greeting.
func (c *Core) ResetConversation(ctx context.Context, sessionID string) entity.ChatMessage {
	if c.ass != nil {
		c.ass.Reset(sessionID)
	}
	if err := c.history.DeleteChatMessages(ctx, sessionID); err != nil {
		c.log.With(
			slog.String("session", sessionID),
			sl.Err(err),
		).Warn("delete chat history")
	}
	return c.Greeting(sessionID)
}

func (c *Core) Greeting(sessionID string) entity.ChatMessage {
	return newMessage(sessionID, entity.RoleModel, ai.InitialMessage)
}

// History returns the session's messages, newest first.
func (c *Core) History(ctx context.Context, sessionID string, limit, offset int) ([]entity.ChatMessage, error) {
	msgs, err := c.history.GetChatMessages(ctx, sessionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return msgs, nil
}

func (c *Core) saveMessage(ctx context.Context, msg entity.ChatMessage) {
	if err := c.history.SaveChatMessage(ctx, msg); err != nil {
		c.log.With(
			slog.String("session", msg.SessionID),
			slog.String("role", msg.Role),
			sl.Err(err),
		).Warn("save chat message")
	}
}

func (c *Core) observeChat(failed bool) {
	if c.metrics == nil {
		return
	}
	if failed {
		c.metrics.ObserveChat(chatResultFailed)
		return
	}
	c.metrics.ObserveChat(chatResultOk)
}

func newMessage(sessionID, role, text string) entity.ChatMessage {
	return entity.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
}
