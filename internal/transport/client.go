package transport

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client wraps a websocket connection as a best-effort JSON sender. Writes
// are serialized by a mutex so independently issued events reach the peer in
// call order. A write error marks the client closed; later sends are
// dropped silently.
type Client struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	hook   func(v any)
	closed bool
}

func NewClient(conn *websocket.Conn) *Client { return &Client{conn: conn} }

// SetSendHook replaces the websocket writer (used in tests).
func (c *Client) SetSendHook(fn func(v any)) {
	c.mu.Lock()
	c.hook = fn
	c.mu.Unlock()
}

func (c *Client) Send(v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hook != nil {
		c.hook(v)
		return
	}
	if c.conn == nil || c.closed {
		return
	}
	if err := c.conn.WriteJSON(v); err != nil {
		c.closed = true
	}
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
