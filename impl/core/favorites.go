package core

import (
	"context"
	"log/slog"

	"AtsAssistant/internal/favorites"
	"AtsAssistant/internal/lib/sl"
)

// Favorites returns the session's favorite ids, or an empty list when the
// store cannot be read.
func (c *Core) Favorites(ctx context.Context, sessionID string) []string {
	ids, err := c.favorites.Load(ctx, sessionID)
	if err != nil {
		c.log.With(
			slog.String("session", sessionID),
			sl.Err(err),
		).Warn("load favorites")
		return []string{}
	}
	return ids
}

// ToggleFavorite flips membership of id. Persisting is best effort: a failed
// write is logged and the updated list is still returned.
func (c *Core) ToggleFavorite(ctx context.Context, sessionID, id string) ([]string, error) {
	if _, ok := c.catalog.FindByID(id); !ok {
		return nil, ErrSchoolNotFound
	}

	c.favLocks.Lock(sessionID)
	defer c.favLocks.Unlock(sessionID)

	ids := favorites.Toggle(c.Favorites(ctx, sessionID), id)
	if err := c.favorites.Save(ctx, sessionID, ids); err != nil {
		c.log.With(
			slog.String("session", sessionID),
			slog.String("id", id),
			sl.Err(err),
		).Warn("save favorites")
	}
	return ids, nil
}

func (c *Core) ClearFavorites(ctx context.Context, sessionID string) {
	if err := c.favorites.Clear(ctx, sessionID); err != nil {
		c.log.With(
			slog.String("session", sessionID),
			sl.Err(err),
		).Warn("clear favorites")
	}
}
