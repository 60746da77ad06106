package lobby

import "errors"

// Sentinel errors for the request-rejection taxonomy. The message text is
// what goes out on the wire in the ERROR event, so keep it user-facing.
var (
	// not-found
	ErrRoomNotFound = errors.New("room not found")

	// conflicts
	ErrGameStarted   = errors.New("game already started")
	ErrRoomFull      = errors.New("room full")
	ErrAlreadyInRoom = errors.New("already in this room")

	// state
	ErrNotInRoom     = errors.New("not in a room")
	ErrNoPublicRooms = errors.New("no public rooms available")

	// capacity of the 4-letter code space, practically unreachable
	ErrCodeSpaceExhausted = errors.New("no room codes available")
)
