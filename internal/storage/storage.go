package storage

import (
	"sync"
	"time"

	"github.com/recyclink/recyclink/internal/assist"
)

// ChatStore holds the live chat conversations keyed by session ID.
// Conversations are page-lifetime state: in-memory only, never
// serialized, swept after an idle TTL.
type ChatStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	conv     assist.Conversation
	lastSeen time.Time
}

func New() *ChatStore {
	return &ChatStore{
		sessions: make(map[string]*session),
	}
}

// GetOrCreate returns the conversation for sessionID, starting one via
// start only if none exists. Starting is idempotent per ID: a second
// call with the same ID reuses the existing conversation.
func (s *ChatStore) GetOrCreate(sessionID string, start func() (assist.Conversation, error)) (assist.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, exists := s.sessions[sessionID]; exists {
		sess.lastSeen = time.Now()
		return sess.conv, nil
	}

	conv, err := start()
	if err != nil {
		return nil, err
	}
	s.sessions[sessionID] = &session{conv: conv, lastSeen: time.Now()}
	return conv, nil
}

// Len reports the number of live sessions.
func (s *ChatStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Delete removes a session.
func (s *ChatStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Sweep drops sessions idle longer than ttl and reports how many went.
func (s *ChatStore) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
