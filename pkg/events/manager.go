package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// SnapshotProvider builds the initial_state payload sent to a subscriber
// before it enters the live stream.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, projectID string) (any, error)
}

// ClientMessage is a message from a WebSocket client.
type ClientMessage struct {
	Action    string `json:"action"`
	ProjectID string `json:"project_id,omitempty"`
}

// ConnectionManager manages WebSocket connections and their bus
// subscriptions.
type ConnectionManager struct {
	bus       *Bus
	snapshots SnapshotProvider

	connections map[string]*Connection
	mu          sync.RWMutex

	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed only from the goroutine owning the
// connection (the read loop and its deferred cleanup), so it needs no
// lock.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]*Subscription
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a manager over the given bus.
func NewConnectionManager(bus *Bus, snapshots SnapshotProvider, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		bus:          bus,
		snapshots:    snapshots,
		connections:  make(map[string]*Connection),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages the lifecycle of one WebSocket connection.
// Called by the HTTP handler after upgrade; blocks until the connection
// closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]*Subscription),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.ProjectID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "project_id is required for subscribe"})
			return
		}
		if _, exists := c.subscriptions[msg.ProjectID]; exists {
			return
		}

		// Snapshot before entering the live stream so the client has a
		// consistent starting point.
		if m.snapshots != nil {
			snapshot, err := m.snapshots.Snapshot(ctx, msg.ProjectID)
			if err != nil {
				slog.Warn("Failed to build initial state",
					"project_id", msg.ProjectID, "error", err)
				m.sendJSON(c, map[string]string{
					"type":       "error",
					"project_id": msg.ProjectID,
					"message":    "failed to build initial state",
				})
				return
			}
			m.sendJSON(c, map[string]any{
				"type":       "initial_state",
				"project_id": msg.ProjectID,
				"state":      snapshot,
			})
		}

		sub := m.bus.Subscribe(msg.ProjectID)
		c.subscriptions[msg.ProjectID] = sub
		go m.pump(c, sub)

	case "unsubscribe":
		if sub, exists := c.subscriptions[msg.ProjectID]; exists {
			sub.Close()
			delete(c.subscriptions, msg.ProjectID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// pump forwards bus events to the connection until the subscription or
// the connection closes.
func (m *ConnectionManager) pump(c *Connection, sub *Subscription) {
	for {
		select {
		case payload, ok := <-sub.Events():
			if !ok {
				return
			}
			m.sendJSON(c, payload)
		case <-c.ctx.Done():
			sub.Close()
			return
		}
	}
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for _, sub := range c.subscriptions {
		sub.Close()
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	if err := c.Conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}
