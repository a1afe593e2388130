package catalog

import (
	"context"
	"fmt"

	"AtsAssistant/entity"
)

// Store keeps a copy of the catalog in a database.
type Store interface {
	GetAllSchools(ctx context.Context) ([]entity.School, error)
	UpsertSchools(ctx context.Context, schools []entity.School) (int64, error)
	CountSchools(ctx context.Context) (int64, error)
}

// LoadFromStore returns the catalog held by store. An empty store is seeded
// from seed first.
func LoadFromStore(ctx context.Context, store Store, seed *Catalog) (*Catalog, error) {
	count, err := store.CountSchools(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 && seed != nil {
		if _, err = store.UpsertSchools(ctx, seed.Schools()); err != nil {
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
	}

	schools, err := store.GetAllSchools(ctx)
	if err != nil {
		return nil, err
	}
	return New(schools), nil
}
