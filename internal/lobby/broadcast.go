package lobby

// Router fans one payload out to the current members of a room. Recipients
// are resolved by connection id, so duplicate display names cannot misroute
// a delivery. A member without a live session is skipped; delivery to the
// rest continues.
type Router struct {
	sessions *SessionRegistry
	rooms    *RoomRegistry
}

func NewRouter(sessions *SessionRegistry, rooms *RoomRegistry) *Router {
	return &Router{sessions: sessions, rooms: rooms}
}

// Broadcast delivers payload to every member of the room except excludeID
// (pass "" to exclude nobody). Per-recipient ordering follows call order
// because each session's sender serializes its writes.
func (rt *Router) Broadcast(roomCode string, payload any, excludeID string) {
	room := rt.rooms.Get(roomCode)
	if room == nil {
		return
	}
	for _, m := range room.members {
		if m.id == excludeID {
			continue
		}
		if s := rt.sessions.Get(m.id); s != nil {
			s.send(payload)
		}
	}
}
