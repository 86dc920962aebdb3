package api

import (
	"errors"
	"sync"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
)

var ErrSessionExists = errors.New("session already exists")

// SessionStore keeps completed sessions in memory. Sessions are written
// once and never mutated; replacing material means creating a new one.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]kit.StudySession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]kit.StudySession)}
}

func (s *SessionStore) Put(sess kit.StudySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID]; ok {
		return ErrSessionExists
	}
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Get(id string) (kit.StudySession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *SessionStore) List() []kit.StudySession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]kit.StudySession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}
