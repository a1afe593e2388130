package core

import (
	"context"
	"errors"
	"log/slog"

	"AtsAssistant/ai"
	"AtsAssistant/entity"
	"AtsAssistant/internal/database"
	"AtsAssistant/internal/favorites"
	"AtsAssistant/internal/lib/locks"
	"AtsAssistant/internal/lib/sl"
)

var (
	ErrSchoolNotFound       = errors.New("school not found")
	ErrEmptyMessage         = errors.New("empty message")
	ErrAssistantUnavailable = errors.New("assistant not initialized")
)

type Catalog interface {
	Filter(criteria entity.FilterCriteria, favorites map[string]struct{}) []entity.School
	Facets() entity.Facets
	FindByID(id string) (entity.School, bool)
	FindByName(name string) (entity.School, bool)
}

type History interface {
	SaveChatMessage(ctx context.Context, msg entity.ChatMessage) error
	GetChatMessages(ctx context.Context, sessionID string, limit, offset int) ([]entity.ChatMessage, error)
	DeleteChatMessages(ctx context.Context, sessionID string) error
}

type Metrics interface {
	ObserveChat(result string)
}

type Core struct {
	catalog   Catalog
	favorites favorites.Store
	ass       ai.Assistant
	history   History
	metrics   Metrics
	favLocks  *locks.SessionLocks
	log       *slog.Logger
}

// New returns a Core with in-memory favorites and history; the setters swap
// in durable backends.
func New(log *slog.Logger, catalog Catalog) *Core {
	return &Core{
		catalog:   catalog,
		favorites: favorites.NewMemoryStore(),
		history:   repository.NewMemoryHistory(),
		favLocks:  locks.NewSessionLocks(),
		log:       log.With(sl.Module("core")),
	}
}

func (c *Core) SetFavoritesStore(store favorites.Store) {
	c.favorites = store
}

func (c *Core) SetAssistant(ass ai.Assistant) {
	c.ass = ass
}

func (c *Core) SetHistory(history History) {
	c.history = history
}

func (c *Core) SetMetrics(metrics Metrics) {
	c.metrics = metrics
}

// ClearCache drops the session's favorites and conversation.
func (c *Core) ClearCache(ctx context.Context, sessionID string) entity.ChatMessage {
	c.ClearFavorites(ctx, sessionID)
	return c.ResetConversation(ctx, sessionID)
}
