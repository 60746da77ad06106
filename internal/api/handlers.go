package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"lobby/internal/lobby"
	"lobby/internal/models"
	"lobby/internal/transport"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type Handlers struct {
	log     *zap.Logger
	ctrl    *lobby.Controller
	started time.Time
}

func NewHandlers(log *zap.Logger, ctrl *lobby.Controller) *Handlers {
	return &Handlers{log: log, ctrl: ctrl, started: time.Now()}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

type pingResponse struct {
	Status  string `json:"status"`
	Time    int64  `json:"time"`
	Message string `json:"message"`
	Rooms   int    `json:"rooms"`
	Players int    `json:"players"`
}

func (h *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	st := h.ctrl.Status()
	writeJSON(w, pingResponse{
		Status:  "ok",
		Time:    time.Now().UnixMilli(),
		Message: "lobby server is alive",
		Rooms:   st.TotalRooms,
		Players: st.TotalPlayers,
	})
}

type statusResponse struct {
	Server        string  `json:"server"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
	models.StatusReport
}

func (h *Handlers) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, statusResponse{
		Server:        "lobby-server",
		Version:       "1.0",
		UptimeSeconds: time.Since(h.started).Seconds(),
		StatusReport:  h.ctrl.Status(),
	})
}

// LobbyWS upgrades the connection, registers a session and pumps inbound
// frames into the controller until the peer goes away.
func (h *Handlers) LobbyWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := transport.NewClient(conn)
	connID := uuid.NewString()
	client.Send(h.ctrl.Register(connID, client))

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var msg models.ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Type == "" {
			client.Send(models.NewErrorEvent("invalid message format"))
			continue
		}
		h.ctrl.Dispatch(connID, msg)
	}

	h.ctrl.Disconnect(connID)
	client.Close()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
