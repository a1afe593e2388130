package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"AtsAssistant/ai"
)

type fakeChat struct {
	sent  []string
	reply string
	err   error
}

func (f *fakeChat) SendMessage(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	for _, p := range parts {
		f.sent = append(f.sent, p.Text)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(f.reply, genai.RoleModel),
		}},
	}, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientKeepsChatPerSession(t *testing.T) {
	created := 0
	chats := []*fakeChat{{reply: "one"}, {reply: "two"}}
	factory := func(context.Context) (chatSession, error) {
		c := chats[created]
		created++
		return c, nil
	}
	c := newClient(factory, DefaultModel, discard())
	ctx := context.Background()

	got, err := c.Send(ctx, "s1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	_, err = c.Send(ctx, "s1", "again")
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, []string{"hello", "again"}, chats[0].sent)

	got, err = c.Send(ctx, "s2", "hi")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
	assert.Equal(t, 2, created)
}

func TestClientResetStartsNewChat(t *testing.T) {
	created := 0
	factory := func(context.Context) (chatSession, error) {
		created++
		return &fakeChat{reply: "ok"}, nil
	}
	c := newClient(factory, DefaultModel, discard())

	_, err := c.Send(context.Background(), "s1", "a")
	require.NoError(t, err)
	c.Reset("s1")
	_, err = c.Send(context.Background(), "s1", "b")
	require.NoError(t, err)

	assert.Equal(t, 2, created)
}

func TestClientEmptyReplyFallsBack(t *testing.T) {
	factory := func(context.Context) (chatSession, error) {
		return &fakeChat{reply: "  "}, nil
	}
	c := newClient(factory, DefaultModel, discard())

	got, err := c.Send(context.Background(), "s1", "a")
	require.NoError(t, err)
	assert.Equal(t, ai.FallbackReply, got)
}

func TestClientTransportError(t *testing.T) {
	factory := func(context.Context) (chatSession, error) {
		return &fakeChat{err: errors.New("quota exceeded")}, nil
	}
	c := newClient(factory, DefaultModel, discard())

	_, err := c.Send(context.Background(), "s1", "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrTransport)
}

func TestClientChatCreationError(t *testing.T) {
	factory := func(context.Context) (chatSession, error) {
		return nil, errors.New("bad model")
	}
	c := newClient(factory, DefaultModel, discard())

	_, err := c.Send(context.Background(), "s1", "a")
	assert.ErrorIs(t, err, ai.ErrTransport)
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(context.Background(), Config{}, discard())
	require.Error(t, err)
}
