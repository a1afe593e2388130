package favorites

import "context"

type Core interface {
	Favorites(ctx context.Context, sessionID string) []string
	ToggleFavorite(ctx context.Context, sessionID, id string) ([]string, error)
	ClearFavorites(ctx context.Context, sessionID string)
}
