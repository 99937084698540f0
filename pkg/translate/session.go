package translate

import (
	"sync"
)

// maxSessionTurns bounds the replayed history of a session-capable
// backend. Older turns are discarded pairwise.
const maxSessionTurns = 8

// Turn is one message of a multi-turn exchange.
type Turn struct {
	Role    string
	Content string
}

// SessionContext is the adapter-owned state surviving across calls for
// session-capable backends. All access is serialized through its mutex
// so a slow call resolving late cannot overwrite a newer exchange
// unguarded.
type SessionContext struct {
	mu    sync.Mutex
	turns []Turn
}

// NewSessionContext returns an empty session.
func NewSessionContext() *SessionContext {
	return &SessionContext{}
}

// Snapshot returns a copy of the recorded turns for request building.
func (s *SessionContext) Snapshot() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Record appends a user/assistant exchange, trimming the oldest pair
// once the history exceeds maxSessionTurns.
func (s *SessionContext) Record(userContent, assistantContent string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns,
		Turn{Role: "user", Content: userContent},
		Turn{Role: "assistant", Content: assistantContent},
	)
	if len(s.turns) > maxSessionTurns {
		s.turns = s.turns[len(s.turns)-maxSessionTurns:]
	}
}

// Reset clears the session. Idempotent.
func (s *SessionContext) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}

// Len returns the number of recorded turns.
func (s *SessionContext) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}
