package gpt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"AtsAssistant/ai"
	"AtsAssistant/internal/lib/locks"
	"AtsAssistant/internal/lib/sl"
)

const DefaultModel = openai.GPT4oMini

type Config struct {
	ApiKey       string
	Model        string
	Temperature  float32
	HistoryTurns int
}

// completer is satisfied by *openai.Client.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client answers through the chat completions API, replaying each session's
// recent turns with every request.
type Client struct {
	client      completer
	model       string
	temperature float32
	maxMessages int
	mu          sync.Mutex
	history     map[string][]openai.ChatCompletionMessage
	locker      *locks.SessionLocks
	log         *slog.Logger
}

func New(conf Config, log *slog.Logger) (*Client, error) {
	if conf.ApiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	return newClient(openai.NewClient(conf.ApiKey), conf, log), nil
}

func newClient(client completer, conf Config, log *slog.Logger) *Client {
	if conf.Model == "" {
		conf.Model = DefaultModel
	}
	if conf.HistoryTurns <= 0 {
		conf.HistoryTurns = 20
	}
	return &Client{
		client:      client,
		model:       conf.Model,
		temperature: conf.Temperature,
		maxMessages: conf.HistoryTurns * 2,
		history:     make(map[string][]openai.ChatCompletionMessage),
		locker:      locks.NewSessionLocks(),
		log:         log.With(sl.Module("gpt")),
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Send(ctx context.Context, sessionID, text string) (string, error) {
	c.locker.Lock(sessionID)
	defer c.locker.Unlock(sessionID)

	userMsg := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	}

	past := c.turns(sessionID)
	messages := make([]openai.ChatCompletionMessage, 0, len(past)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: ai.SystemInstruction,
	})
	messages = append(messages, past...)
	messages = append(messages, userMsg)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		c.log.With(
			slog.String("session", sessionID),
			sl.Err(err),
		).Error("chat completion")
		return "", fmt.Errorf("%w: %v", ai.ErrTransport, err)
	}

	answer := ""
	if len(resp.Choices) > 0 {
		answer = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if answer == "" {
		c.log.With(slog.String("session", sessionID)).Warn("empty model response")
		return ai.FallbackReply, nil
	}

	c.remember(sessionID, userMsg, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: answer,
	})

	return answer, nil
}

func (c *Client) Reset(sessionID string) {
	c.mu.Lock()
	delete(c.history, sessionID)
	c.mu.Unlock()
}

func (c *Client) turns(sessionID string) []openai.ChatCompletionMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	past := c.history[sessionID]
	out := make([]openai.ChatCompletionMessage, len(past))
	copy(out, past)
	return out
}

func (c *Client) remember(sessionID string, msgs ...openai.ChatCompletionMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := append(c.history[sessionID], msgs...)
	if len(h) > c.maxMessages {
		h = h[len(h)-c.maxMessages:]
	}
	c.history[sessionID] = h
}
