package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"codecircle/pkg/logger"
)

// Client represents one connected chat listener.
type Client struct {
	UserEmail string
	Conn      *websocket.Conn
	Send      chan []byte
}

// Manager fans community chat messages out to every connected client. The SPA
// polls over REST; websocket delivery is additive for clients that keep a
// connection open.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserEmail] = client
				m.mutex.Unlock()
				logger.Info("Chat client connected: %s", client.UserEmail)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.UserEmail]; ok {
					delete(m.clients, client.UserEmail)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Chat client disconnected: %s", client.UserEmail)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for email, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, email)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Broadcast queues a message for every connected client.
func (m *Manager) Broadcast(message []byte) {
	select {
	case m.broadcast <- message:
	default:
		logger.Warn("Chat broadcast buffer full, dropping message")
	}
}

// ReadPump drains the connection until the peer hangs up. Chat writes go
// through the REST API; inbound frames are ignored.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Chat read error from %s: %v", c.UserEmail, err)
			}
			break
		}
	}
}

// WritePump forwards queued broadcasts to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Chat write error to %s: %v", c.UserEmail, err)
			return
		}
	}
}

// ClientCount returns the number of connected clients.
func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}
