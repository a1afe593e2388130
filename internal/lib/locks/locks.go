package locks

import "sync"

// SessionLocks serialises work per session id.
type SessionLocks struct {
	mutex    sync.Mutex
	sessions map[string]*sync.Mutex
}

func NewSessionLocks() *SessionLocks {
	return &SessionLocks{sessions: make(map[string]*sync.Mutex)}
}

func (l *SessionLocks) Lock(sessionID string) {
	l.mutex.Lock()
	mutex, exists := l.sessions[sessionID]
	if !exists {
		mutex = &sync.Mutex{}
		l.sessions[sessionID] = mutex
	}
	l.mutex.Unlock()

	mutex.Lock()
}

func (l *SessionLocks) Unlock(sessionID string) {
	l.mutex.Lock()
	mutex, exists := l.sessions[sessionID]
	l.mutex.Unlock()
	if !exists {
		return
	}
	mutex.Unlock()
}
