package lobby

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"lobby/internal/events"
	"lobby/internal/metrics"
	"lobby/internal/models"
)

const serverName = "lobby-server/1.0"

// Controller is the session state machine: it interprets inbound events,
// mutates the registries and decides what to emit. One RWMutex around
// dispatch is the single serialization point; the registries carry no locks
// of their own. Status takes the read lock only.
type Controller struct {
	mu       sync.RWMutex
	log      *zap.Logger
	sessions *SessionRegistry
	rooms    *RoomRegistry
	router   *Router
	feed     *events.Publisher
}

func NewController(log *zap.Logger, capacity int, feed *events.Publisher) *Controller {
	sessions := NewSessionRegistry()
	rooms := NewRoomRegistry(capacity, NewCodeGenerator(time.Now().UnixNano()))
	return &Controller{
		log:      log,
		sessions: sessions,
		rooms:    rooms,
		router:   NewRouter(sessions, rooms),
		feed:     feed,
	}
}

// Register creates the session for a freshly accepted connection and returns
// the welcome event the transport should deliver first.
func (c *Controller) Register(connID string, sender Sender) models.Welcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessions.Register(connID, sender)
	metrics.ConnectionsActive.Inc()
	c.log.Info("player connected", zap.String("connId", connID), zap.String("username", s.Name))

	return models.Welcome{
		Type:         models.EvtWelcome,
		Message:      "Welcome to the lobby!",
		Server:       serverName,
		YourUsername: s.Name,
	}
}

// Disconnect tears the session down: leave the current room, then discard
// the session. Safe to call for unknown ids.
func (c *Controller) Disconnect(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessions.Get(connID)
	if s == nil {
		return
	}
	c.leave(s)
	c.sessions.Remove(connID)
	metrics.ConnectionsActive.Dec()
	c.log.Info("player disconnected", zap.String("connId", connID), zap.String("username", s.Name))
}

// Dispatch routes one parsed inbound message. Unknown session ids are
// ignored; the transport only dispatches for registered connections.
func (c *Controller) Dispatch(connID string, msg models.ClientMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessions.Get(connID)
	if s == nil {
		return
	}

	switch msg.Type {
	case models.MsgSetUsername:
		c.setUsername(s, msg.Username)
	case models.MsgCreatePublicRoom:
		c.createRoom(s, models.VisibilityPublic)
	case models.MsgCreatePrivateRoom:
		c.createRoom(s, models.VisibilityPrivate)
	case models.MsgJoinRoomByCode:
		c.joinByCode(s, msg.RoomCode)
	case models.MsgJoinRandomRoom:
		c.joinRandom(s)
	case models.MsgLeaveRoom:
		c.leave(s)
	case models.MsgSendMessage:
		c.sendMessage(s, msg.Message)
	case models.MsgSetGameStarted:
		c.setGameStarted(s, msg.Started)
	case models.MsgGetRoomInfo:
		c.roomInfo(s)
	case models.MsgPing:
		s.send(models.Pong{Type: models.EvtPong})
	default:
		metrics.InboundEventsTotal.WithLabelValues("unknown").Inc()
		s.send(models.NewErrorEvent("unknown command"))
		return
	}
	metrics.InboundEventsTotal.WithLabelValues(msg.Type).Inc()
}

// Status is a read-only snapshot for operational reporting.
func (c *Controller) Status() models.StatusReport {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return models.StatusReport{
		TotalRooms:   c.rooms.Len(),
		TotalPlayers: c.sessions.Len(),
		Rooms:        c.rooms.Summaries(),
	}
}

// setUsername renames the session. An empty name after trimming is ignored.
// When the session is in a room the member entry and the presented owner
// name update under the same lock and go out in a single PLAYER_UPDATED.
func (c *Controller) setUsername(s *Session, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	old := s.Name
	s.Name = name

	if s.InRoom() {
		room := c.roomOf(s)
		if room != nil {
			room.rename(s.ID, name)
			c.router.Broadcast(room.Code, models.PlayerUpdated{
				Type:         models.EvtPlayerUpdated,
				OldUsername:  old,
				NewUsername:  name,
				Participants: room.MemberNames(),
			}, "")
		}
	}

	s.send(models.UsernameSet{Type: models.EvtUsernameSet, Username: name})
}

func (c *Controller) createRoom(s *Session, visibility string) {
	if s.InRoom() {
		c.leave(s)
	}

	room, err := c.rooms.Create(visibility, s.ID, s.Name)
	if err != nil {
		c.log.Error("room allocation failed", zap.Error(err))
		s.send(models.NewErrorEvent(err.Error()))
		return
	}
	s.RoomCode = room.Code

	metrics.RoomsActive.Inc()
	c.feed.RoomCreated(room.Code, room.Visibility, room.Owner())
	c.log.Info("room created",
		zap.String("roomCode", room.Code),
		zap.String("roomType", visibility),
		zap.String("owner", s.Name))

	s.send(models.RoomCreated{Type: models.EvtRoomCreated, RoomSnapshot: room.Snapshot()})
}

func (c *Controller) joinByCode(s *Session, code string) {
	code = strings.ToUpper(strings.TrimSpace(code))

	room := c.rooms.Get(code)
	if room == nil {
		s.send(models.NewErrorEvent(ErrRoomNotFound.Error()))
		return
	}
	if room.GameStarted {
		s.send(models.NewErrorEvent(ErrGameStarted.Error()))
		return
	}
	if room.isFull() {
		s.send(models.NewErrorEvent(ErrRoomFull.Error()))
		return
	}
	if room.hasMemberID(s.ID) || room.hasMemberName(s.Name) {
		s.send(models.NewErrorEvent(ErrAlreadyInRoom.Error()))
		return
	}

	if s.InRoom() {
		c.leave(s)
	}

	room.addMember(s.ID, s.Name)
	s.RoomCode = room.Code

	c.log.Info("player joined room",
		zap.String("roomCode", room.Code),
		zap.String("username", s.Name))

	s.send(models.RoomJoined{Type: models.EvtRoomJoined, RoomSnapshot: room.Snapshot()})
	c.router.Broadcast(room.Code, models.PlayerJoined{
		Type:         models.EvtPlayerJoined,
		Username:     s.Name,
		Participants: room.MemberNames(),
	}, s.ID)
}

func (c *Controller) joinRandom(s *Session) {
	var candidates []*Room
	for room := range c.rooms.Joinable(models.VisibilityPublic) {
		candidates = append(candidates, room)
	}
	if len(candidates) == 0 {
		s.send(models.NewErrorEvent(ErrNoPublicRooms.Error()))
		return
	}
	pick := candidates[rand.Intn(len(candidates))]
	c.joinByCode(s, pick.Code)
}

// leave removes the session from its room, deleting the room when it
// empties. A second leave in a row is a no-op.
func (c *Controller) leave(s *Session) {
	if !s.InRoom() {
		return
	}

	code := s.RoomCode
	room := c.rooms.Get(code)
	if room == nil {
		// session points at a room the registry does not have
		c.log.DPanic("session references unknown room",
			zap.String("connId", s.ID),
			zap.String("roomCode", code))
		s.RoomCode = ""
		return
	}

	room.removeMember(s.ID)
	s.RoomCode = ""

	c.router.Broadcast(code, models.PlayerLeft{
		Type:         models.EvtPlayerLeft,
		Username:     s.Name,
		Participants: room.MemberNames(),
	}, s.ID)

	if room.MemberCount() == 0 {
		c.rooms.Delete(code)
		metrics.RoomsActive.Dec()
		c.feed.RoomDeleted(code)
		c.log.Info("room deleted", zap.String("roomCode", code))
	}

	c.log.Info("player left room",
		zap.String("roomCode", code),
		zap.String("username", s.Name))

	s.send(models.RoomLeft{Type: models.EvtRoomLeft})
}

func (c *Controller) sendMessage(s *Session, text string) {
	if !s.InRoom() || text == "" {
		return
	}
	room := c.roomOf(s)
	if room == nil {
		return
	}

	msg := models.ChatMessage{
		Sender:    s.Name,
		Message:   text,
		Timestamp: time.Now().UnixMilli(),
	}
	room.appendHistory(msg)
	metrics.ChatMessagesTotal.Inc()

	c.router.Broadcast(room.Code, models.NewMessage{
		Type:        models.EvtNewMessage,
		ChatMessage: msg,
	}, "")
}

// setGameStarted flips the room flag. Only the owning session may do this;
// anyone else is silently ignored. Ownership is checked by connection id,
// so a member who merely shares the owner's display name has no privilege.
func (c *Controller) setGameStarted(s *Session, started bool) {
	if !s.InRoom() {
		return
	}
	room := c.roomOf(s)
	if room == nil || room.ownerID != s.ID {
		return
	}

	room.GameStarted = started
	c.feed.GameStateChanged(room.Code, started)
	c.log.Info("game state changed",
		zap.String("roomCode", room.Code),
		zap.Bool("gameStarted", started),
		zap.String("changedBy", s.Name))

	c.router.Broadcast(room.Code, models.GameStateChanged{
		Type:        models.EvtGameStateChanged,
		GameStarted: started,
		ChangedBy:   s.Name,
	}, "")
}

func (c *Controller) roomInfo(s *Session) {
	if !s.InRoom() {
		s.send(models.NewErrorEvent(ErrNotInRoom.Error()))
		return
	}
	room := c.roomOf(s)
	if room == nil {
		return
	}
	s.send(models.RoomInfo{
		Type:             models.EvtRoomInfo,
		RoomSnapshot:     room.Snapshot(),
		ParticipantCount: room.MemberCount(),
	})
}

// roomOf resolves the session's room and treats a dangling reference as a
// programming defect: DPanic logs in production and panics on a development
// logger.
func (c *Controller) roomOf(s *Session) *Room {
	room := c.rooms.Get(s.RoomCode)
	if room == nil {
		c.log.DPanic("session references unknown room",
			zap.String("connId", s.ID),
			zap.String("roomCode", s.RoomCode))
	}
	return room
}
