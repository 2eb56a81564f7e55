package realtime

// Event types pushed to connected clients. The SPA switches on "type" to
// reconcile its local article list.
const (
	EventNewsAdded   = "newsAdded"
	EventNewsUpdated = "newsUpdated"
	EventNewsDeleted = "newsDeleted"
)

// Event is the wire payload for one mutation notification.
// For EventNewsDeleted, Data carries only the article identifier.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Broadcaster is what the news service needs from the realtime layer.
// Delivery is best-effort: no acknowledgement, no retry, no replay.
type Broadcaster interface {
	Broadcast(event Event)
}
