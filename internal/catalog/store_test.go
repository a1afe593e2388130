package catalog

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AtsAssistant/entity"
)

type memoryStore struct {
	rows    map[string]entity.School
	upserts int
	err     error
}

func (m *memoryStore) GetAllSchools(context.Context) ([]entity.School, error) {
	out := make([]entity.School, 0, len(m.rows))
	for _, s := range m.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) UpsertSchools(_ context.Context, schools []entity.School) (int64, error) {
	m.upserts++
	for _, s := range schools {
		m.rows[s.ID] = s
	}
	return int64(len(schools)), nil
}

func (m *memoryStore) CountSchools(context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.rows)), nil
}

func TestLoadFromStoreSeedsEmptyStore(t *testing.T) {
	seed, err := Load("")
	require.NoError(t, err)

	store := &memoryStore{rows: map[string]entity.School{}}
	c, err := LoadFromStore(context.Background(), store, seed)
	require.NoError(t, err)

	assert.Equal(t, 1, store.upserts)
	assert.Equal(t, seed.Len(), c.Len())
	assert.Equal(t, "ATS-001", c.Schools()[0].ID)
}

func TestLoadFromStoreKeepsExistingRows(t *testing.T) {
	seed, err := Load("")
	require.NoError(t, err)

	store := &memoryStore{rows: map[string]entity.School{
		"X1": {ID: "X1", Name: "Stored School"},
	}}
	c, err := LoadFromStore(context.Background(), store, seed)
	require.NoError(t, err)

	assert.Zero(t, store.upserts)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Stored School", c.Schools()[0].Name)
}

func TestLoadFromStoreError(t *testing.T) {
	store := &memoryStore{err: errors.New("down")}
	_, err := LoadFromStore(context.Background(), store, nil)
	require.Error(t, err)
}
