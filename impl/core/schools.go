package core

import (
	"context"

	"AtsAssistant/entity"
	"AtsAssistant/internal/favorites"
)

// Schools applies the criteria to the catalog. Favorites are read only when
// the favorites facet is active; a failed read counts as an empty set.
func (c *Core) Schools(ctx context.Context, sessionID string, criteria entity.FilterCriteria) []entity.School {
	var favs map[string]struct{}
	if criteria.FavoritesOnly {
		favs = favorites.Set(c.Favorites(ctx, sessionID))
	}
	return c.catalog.Filter(criteria, favs)
}

func (c *Core) Facets() entity.Facets {
	return c.catalog.Facets()
}

func (c *Core) School(id string) (entity.School, error) {
	school, ok := c.catalog.FindByID(id)
	if !ok {
		return entity.School{}, ErrSchoolNotFound
	}
	return school, nil
}
