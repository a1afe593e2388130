// Package favorites persists the set of school ids a session has starred.
//
// Ids are stored as a JSON array under a versioned key. The version marker is
// a compatibility tag: bumping it orphans every previously stored set.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
)

const KeyPrefix = "ats_favorites_v5_official"

type Store interface {
	Load(ctx context.Context, sessionID string) ([]string, error)
	Save(ctx context.Context, sessionID string, ids []string) error
	Clear(ctx context.Context, sessionID string) error
}

func Key(sessionID string) string {
	return KeyPrefix + ":" + sessionID
}

// Toggle removes id when present and appends it otherwise. The input slice is
// not modified and the other members keep their relative order.
func Toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

func Contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func Set(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func decode(raw []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decoding favorites: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func encode(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(ids)
}
