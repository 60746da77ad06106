package lobby

import (
	"iter"
	"time"

	"lobby/internal/models"
)

type member struct {
	id   string // connection id, the stable identity
	name string
}

// Room is a capacity-bounded group of sessions sharing chat history and a
// game-started flag. Ownership is keyed by the creator's connection id; the
// owner name is what gets presented.
type Room struct {
	Code        string
	Visibility  string
	Capacity    int
	GameStarted bool

	ownerID   string
	ownerName string
	members   []member // join order
	history   []models.ChatMessage
	createdAt time.Time
}

func (r *Room) Name() string { return "Room " + r.Code }

func (r *Room) Owner() string { return r.ownerName }

func (r *Room) MemberCount() int { return len(r.members) }

func (r *Room) MemberNames() []string {
	names := make([]string, len(r.members))
	for i, m := range r.members {
		names[i] = m.name
	}
	return names
}

func (r *Room) hasMemberID(id string) bool {
	for _, m := range r.members {
		if m.id == id {
			return true
		}
	}
	return false
}

func (r *Room) hasMemberName(name string) bool {
	for _, m := range r.members {
		if m.name == name {
			return true
		}
	}
	return false
}

func (r *Room) isFull() bool { return len(r.members) >= r.Capacity }

func (r *Room) joinable() bool { return !r.GameStarted && !r.isFull() }

func (r *Room) addMember(id, name string) {
	r.members = append(r.members, member{id: id, name: name})
}

func (r *Room) removeMember(id string) {
	for i, m := range r.members {
		if m.id == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return
		}
	}
}

// rename rewrites the member entry and, when the renaming session owns the
// room, the presented owner name. Callers hold the controller lock, so both
// updates are observed together.
func (r *Room) rename(id, newName string) {
	for i, m := range r.members {
		if m.id == id {
			r.members[i].name = newName
			break
		}
	}
	if r.ownerID == id {
		r.ownerName = newName
	}
}

func (r *Room) appendHistory(msg models.ChatMessage) {
	r.history = append(r.history, msg)
}

func (r *Room) History() []models.ChatMessage {
	out := make([]models.ChatMessage, len(r.history))
	copy(out, r.history)
	return out
}

func (r *Room) Snapshot() models.RoomSnapshot {
	return models.RoomSnapshot{
		RoomCode:     r.Code,
		RoomName:     r.Name(),
		RoomType:     r.Visibility,
		Participants: r.MemberNames(),
		Owner:        r.ownerName,
		GameStarted:  r.GameStarted,
	}
}

func (r *Room) Summary() models.RoomSummary {
	return models.RoomSummary{
		RoomSnapshot:     r.Snapshot(),
		ParticipantCount: len(r.members),
	}
}

// RoomRegistry maps codes to live rooms. Like the session registry it is
// lock-free; the controller is the serialization point. Creation order is
// tracked so iteration is stable for a given registry snapshot.
type RoomRegistry struct {
	rooms    map[string]*Room
	order    []string
	codes    *CodeGenerator
	capacity int
}

func NewRoomRegistry(capacity int, codes *CodeGenerator) *RoomRegistry {
	return &RoomRegistry{
		rooms:    make(map[string]*Room),
		codes:    codes,
		capacity: capacity,
	}
}

// Create allocates a room with the creator as sole member and owner.
func (g *RoomRegistry) Create(visibility, creatorID, creatorName string) (*Room, error) {
	code, err := g.codes.Next(func(c string) bool {
		_, taken := g.rooms[c]
		return taken
	})
	if err != nil {
		return nil, err
	}

	room := &Room{
		Code:       code,
		Visibility: visibility,
		Capacity:   g.capacity,
		ownerID:    creatorID,
		ownerName:  creatorName,
		members:    []member{{id: creatorID, name: creatorName}},
		createdAt:  time.Now(),
	}
	g.rooms[code] = room
	g.order = append(g.order, code)
	return room, nil
}

func (g *RoomRegistry) Get(code string) *Room { return g.rooms[code] }

func (g *RoomRegistry) Delete(code string) {
	if _, ok := g.rooms[code]; !ok {
		return
	}
	delete(g.rooms, code)
	for i, c := range g.order {
		if c == code {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

func (g *RoomRegistry) Len() int { return len(g.rooms) }

// Joinable yields rooms of the given visibility that are not game-started
// and below capacity, in creation order.
func (g *RoomRegistry) Joinable(visibility string) iter.Seq[*Room] {
	return func(yield func(*Room) bool) {
		for _, code := range g.order {
			room := g.rooms[code]
			if room == nil || room.Visibility != visibility || !room.joinable() {
				continue
			}
			if !yield(room) {
				return
			}
		}
	}
}

func (g *RoomRegistry) Summaries() []models.RoomSummary {
	out := make([]models.RoomSummary, 0, len(g.order))
	for _, code := range g.order {
		if room := g.rooms[code]; room != nil {
			out = append(out, room.Summary())
		}
	}
	return out
}
