package models

// Room visibility
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Inbound message types
const (
	MsgSetUsername       = "SET_USERNAME"
	MsgCreatePublicRoom  = "CREATE_PUBLIC_ROOM"
	MsgCreatePrivateRoom = "CREATE_PRIVATE_ROOM"
	MsgJoinRoomByCode    = "JOIN_ROOM_BY_CODE"
	MsgJoinRandomRoom    = "JOIN_RANDOM_ROOM"
	MsgLeaveRoom         = "LEAVE_ROOM"
	MsgSendMessage       = "SEND_MESSAGE"
	MsgSetGameStarted    = "SET_GAME_STARTED"
	MsgGetRoomInfo       = "GET_ROOM_INFO"
	MsgPing              = "PING"
)

// Outbound event types
const (
	EvtWelcome          = "WELCOME"
	EvtUsernameSet      = "USERNAME_SET"
	EvtPlayerUpdated    = "PLAYER_UPDATED"
	EvtRoomCreated      = "ROOM_CREATED"
	EvtRoomJoined       = "ROOM_JOINED"
	EvtPlayerJoined     = "PLAYER_JOINED"
	EvtRoomLeft         = "ROOM_LEFT"
	EvtPlayerLeft       = "PLAYER_LEFT"
	EvtNewMessage       = "NEW_MESSAGE"
	EvtGameStateChanged = "GAME_STATE_CHANGED"
	EvtRoomInfo         = "ROOM_INFO"
	EvtError            = "ERROR"
	EvtPong             = "PONG"
)

// ClientMessage is the single inbound frame shape; Type selects which of the
// optional fields are meaningful.
type ClientMessage struct {
	Type     string `json:"type"`
	Username string `json:"username,omitempty"`
	RoomCode string `json:"roomCode,omitempty"`
	Message  string `json:"message,omitempty"`
	Started  bool   `json:"started,omitempty"`
}

// RoomSnapshot is the full room state carried by every room-state event.
type RoomSnapshot struct {
	RoomCode     string   `json:"roomCode"`
	RoomName     string   `json:"roomName"`
	RoomType     string   `json:"roomType"`
	Participants []string `json:"participants"`
	Owner        string   `json:"owner"`
	GameStarted  bool     `json:"gameStarted"`
}

type Welcome struct {
	Type         string `json:"type"`
	Message      string `json:"message"`
	Server       string `json:"server"`
	YourUsername string `json:"yourUsername"`
}

type UsernameSet struct {
	Type     string `json:"type"`
	Username string `json:"username"`
}

type PlayerUpdated struct {
	Type         string   `json:"type"`
	OldUsername  string   `json:"oldUsername"`
	NewUsername  string   `json:"newUsername"`
	Participants []string `json:"participants"`
}

type RoomCreated struct {
	Type string `json:"type"`
	RoomSnapshot
}

type RoomJoined struct {
	Type string `json:"type"`
	RoomSnapshot
}

type PlayerJoined struct {
	Type         string   `json:"type"`
	Username     string   `json:"username"`
	Participants []string `json:"participants"`
}

type RoomLeft struct {
	Type string `json:"type"`
}

type PlayerLeft struct {
	Type         string   `json:"type"`
	Username     string   `json:"username"`
	Participants []string `json:"participants"`
}

// ChatMessage is both the history record and the NEW_MESSAGE payload body.
type ChatMessage struct {
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}

type NewMessage struct {
	Type string `json:"type"`
	ChatMessage
}

type GameStateChanged struct {
	Type        string `json:"type"`
	GameStarted bool   `json:"gameStarted"`
	ChangedBy   string `json:"changedBy"`
}

type RoomInfo struct {
	Type string `json:"type"`
	RoomSnapshot
	ParticipantCount int `json:"participantCount"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Pong struct {
	Type string `json:"type"`
}

func NewErrorEvent(msg string) ErrorEvent {
	return ErrorEvent{Type: EvtError, Message: msg}
}

// RoomSummary is the per-room entry of the operational status report.
type RoomSummary struct {
	RoomSnapshot
	ParticipantCount int `json:"participantCount"`
}

// StatusReport is the read-only aggregate consumed by /status and the
// periodic status log.
type StatusReport struct {
	TotalRooms   int           `json:"totalRooms"`
	TotalPlayers int           `json:"totalPlayers"`
	Rooms        []RoomSummary `json:"rooms"`
}
