package bot

import "sync"

// searchStore keeps the last /search query of each user so page buttons can
// rebuild the result list.
type searchStore struct {
	mutex   sync.Mutex
	queries map[int64]string
}

func newSearchStore() *searchStore {
	return &searchStore{queries: make(map[int64]string)}
}

func (s *searchStore) set(userId int64, query string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.queries[userId] = query
}

func (s *searchStore) get(userId int64) (string, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	query, ok := s.queries[userId]
	return query, ok
}
