package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"news-backend/internal/infrastructure/metrics"
)

const (
	// sendBufferSize bounds the per-client outbound queue. A client that
	// cannot drain this many events loses the overflow; it recovers by
	// re-fetching the full list on reconnect.
	sendBufferSize = 32

	writeTimeout = 10 * time.Second
)

// Conn is the subset of *websocket.Conn the hub needs. Kept narrow so tests
// can substitute an in-memory connection.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client is one registered realtime connection.
type Client struct {
	conn Conn
	send chan []byte

	closeOnce sync.Once
}

// close shuts the send channel exactly once. The write pump exits when the
// channel drains.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// Hub is the broadcast fan-out: a registry of open connections that every
// mutating API call publishes to. Handlers run concurrently, so the registry
// is guarded by a mutex.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

// Register adds a connection to the registry and starts its write pump.
func (h *Hub) Register(conn Conn) *Client {
	client := &Client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	metrics.WebsocketConnections.Set(float64(count))
	log.Info().Int("connections", count).Msg("New client connected")

	go client.writePump()
	return client
}

// Unregister removes a connection. Cleanup is reactive: it is called from the
// connection's own read loop when the peer goes away, never from Broadcast.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
		// Closed under the lock so Broadcast can never send on a closed
		// channel.
		client.close()
	}
	count := len(h.clients)
	h.mu.Unlock()

	if !ok {
		return
	}

	metrics.WebsocketConnections.Set(float64(count))
	log.Info().Int("connections", count).Msg("Client disconnected")
}

// Broadcast sends one event to every currently registered connection.
// Delivery is at-most-once per client: the payload is queued on each client's
// buffered channel without blocking, so a slow or broken connection never
// delays the HTTP request that triggered the broadcast. Errors are swallowed.
func (h *Hub) Broadcast(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("Failed to encode broadcast event")
		return
	}

	metrics.RecordBroadcast(event.Type)

	// The whole loop runs under the lock: every send is non-blocking, and
	// Unregister closes a client's channel under the same lock, so a send on
	// a closed channel is impossible.
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Buffer full: drop this delivery for this client only.
			metrics.BroadcastDroppedTotal.Inc()
		}
	}
}

// ClientCount reports the number of registered connections.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Shutdown closes every registered connection. Used on process exit.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.clients = make(map[*Client]struct{})
	h.mu.Unlock()

	for _, client := range clients {
		client.close()
	}
	metrics.WebsocketConnections.Set(0)
}

// writePump drains the send channel onto the connection. It preserves the
// order events were issued for this connection. A write failure closes the
// connection; the read loop then triggers Unregister.
func (c *Client) writePump() {
	defer c.conn.Close()

	for payload := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
