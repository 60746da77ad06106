package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel is the redis pub/sub channel lifecycle events go out on.
const Channel = "lobby:events"

// Event kinds
const (
	KindRoomCreated      = "room_created"
	KindRoomDeleted      = "room_deleted"
	KindGameStateChanged = "game_state_changed"
)

// Event is the JSON payload published for external consumers (dashboards,
// ops tooling). Nothing in the broker reads these back.
type Event struct {
	Kind        string    `json:"kind"`
	RoomCode    string    `json:"roomCode"`
	RoomType    string    `json:"roomType,omitempty"`
	Owner       string    `json:"owner,omitempty"`
	GameStarted bool      `json:"gameStarted,omitempty"`
	At          time.Time `json:"at"`
}

// Publisher publishes lobby lifecycle events fire-and-forget. A nil
// Publisher or a Publisher without a redis client is a no-op, so the broker
// runs fine with the feed disabled.
type Publisher struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewPublisher(rdb *redis.Client, log *zap.Logger) *Publisher {
	return &Publisher{rdb: rdb, log: log}
}

func (p *Publisher) enabled() bool { return p != nil && p.rdb != nil }

func (p *Publisher) RoomCreated(code, roomType, owner string) {
	p.publish(Event{Kind: KindRoomCreated, RoomCode: code, RoomType: roomType, Owner: owner})
}

func (p *Publisher) RoomDeleted(code string) {
	p.publish(Event{Kind: KindRoomDeleted, RoomCode: code})
}

func (p *Publisher) GameStateChanged(code string, started bool) {
	p.publish(Event{Kind: KindGameStateChanged, RoomCode: code, GameStarted: started})
}

// publish runs asynchronously so callers holding the controller lock never
// block on redis.
func (p *Publisher) publish(evt Event) {
	if !p.enabled() {
		return
	}
	evt.At = time.Now()
	data, err := json.Marshal(evt)
	if err != nil {
		p.log.Error("marshal lobby event", zap.Error(err))
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := p.rdb.Publish(ctx, Channel, data).Err(); err != nil {
			p.log.Warn("publish lobby event",
				zap.String("kind", evt.Kind),
				zap.String("roomCode", evt.RoomCode),
				zap.Error(err))
		}
	}()
}
