package lobby

import (
	"fmt"
	"math/rand"
)

// Sender delivers one outbound event to a single connection. Delivery is
// best-effort; implementations must never block on a dead peer.
type Sender interface {
	Send(v any)
}

// Session is the server-side state for one live connection. The ID is the
// stable identity used for membership and ownership; Name is presentation
// only and may collide across sessions.
type Session struct {
	ID       string
	Name     string
	RoomCode string // empty when idle

	sender Sender
}

func (s *Session) InRoom() bool { return s.RoomCode != "" }

func (s *Session) send(v any) {
	if s.sender != nil {
		s.sender.Send(v)
	}
}

// SessionRegistry maps connection ids to sessions. It carries no lock of its
// own; the controller serializes all access.
type SessionRegistry struct {
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

// Register creates a session with a generated placeholder name. Placeholder
// collisions are allowed, so no uniqueness check is made.
func (r *SessionRegistry) Register(id string, sender Sender) *Session {
	s := &Session{
		ID:     id,
		Name:   fmt.Sprintf("Player%d", rand.Intn(1000)),
		sender: sender,
	}
	r.sessions[id] = s
	return s
}

func (r *SessionRegistry) Get(id string) *Session { return r.sessions[id] }

func (r *SessionRegistry) Remove(id string) { delete(r.sessions, id) }

func (r *SessionRegistry) Len() int { return len(r.sessions) }
