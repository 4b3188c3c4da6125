package web

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Conn wraps a single WebSocket client. Writes come from the read loop and
// from the run forwarder, so they are serialized here.
type Conn struct {
	ID     string
	ws     *websocket.Conn
	mu     sync.Mutex // protects ws writes and closed
	closed bool
}

// NewConn creates a new connection wrapper
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID: uuid.New().String(),
		ws: ws,
	}
}

// Send serializes msg to JSON and writes it to the WebSocket
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.ws.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// sendErrorAndClose reports msg to the client and drops the connection.
func (c *Conn) sendErrorAndClose(msg string) {
	c.Send(newErrorMsg(msg)) //nolint:errcheck
	c.Close()
}

// Close marks the connection closed. Safe to call multiple times.
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.ws.Close()
}
