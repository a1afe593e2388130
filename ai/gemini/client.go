package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"google.golang.org/genai"

	"AtsAssistant/ai"
	"AtsAssistant/internal/lib/locks"
	"AtsAssistant/internal/lib/sl"
)

const DefaultModel = "gemini-3-flash-preview"

type Config struct {
	ApiKey      string
	Model       string
	Temperature float32
}

// chatSession is the part of *genai.Chat the client needs.
type chatSession interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type chatFactory func(ctx context.Context) (chatSession, error)

// Client keeps one Gemini chat per session.
type Client struct {
	newChat chatFactory
	model   string
	mu      sync.Mutex
	chats   map[string]chatSession
	locker  *locks.SessionLocks
	log     *slog.Logger
}

func New(ctx context.Context, conf Config, log *slog.Logger) (*Client, error) {
	if conf.ApiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if conf.Model == "" {
		conf.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  conf.ApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	temperature := conf.Temperature
	chatConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(ai.SystemInstruction, genai.RoleUser),
		Temperature:       &temperature,
	}

	factory := func(ctx context.Context) (chatSession, error) {
		chat, err := client.Chats.Create(ctx, conf.Model, chatConfig, nil)
		if err != nil {
			return nil, err
		}
		return chat, nil
	}

	return newClient(factory, conf.Model, log), nil
}

func newClient(factory chatFactory, model string, log *slog.Logger) *Client {
	return &Client{
		newChat: factory,
		model:   model,
		chats:   make(map[string]chatSession),
		locker:  locks.NewSessionLocks(),
		log:     log.With(sl.Module("gemini")),
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Send(ctx context.Context, sessionID, text string) (string, error) {
	c.locker.Lock(sessionID)
	defer c.locker.Unlock(sessionID)

	chat, err := c.chat(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("%w: creating chat: %v", ai.ErrTransport, err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		c.log.With(
			slog.String("session", sessionID),
			sl.Err(err),
		).Error("gemini send message")
		return "", fmt.Errorf("%w: %v", ai.ErrTransport, err)
	}

	answer := ""
	if resp != nil {
		answer = strings.TrimSpace(resp.Text())
	}
	if answer == "" {
		c.log.With(slog.String("session", sessionID)).Warn("empty model response")
		return ai.FallbackReply, nil
	}

	return answer, nil
}

func (c *Client) Reset(sessionID string) {
	c.mu.Lock()
	delete(c.chats, sessionID)
	c.mu.Unlock()
}

func (c *Client) chat(ctx context.Context, sessionID string) (chatSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if chat, ok := c.chats[sessionID]; ok {
		return chat, nil
	}
	chat, err := c.newChat(ctx)
	if err != nil {
		return nil, err
	}
	c.chats[sessionID] = chat
	c.log.With(slog.String("session", sessionID)).Debug("created new chat")
	return chat, nil
}
