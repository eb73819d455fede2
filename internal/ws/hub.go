package ws

import (
	"log"
	"sync"
)

// Hub fans listings_updated events out to every subscribed board client.
// A subscriber whose send buffer is full is dropped on the spot; one stalled
// dashboard must never hold back the feed for everyone else.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Client]struct{}

	events     chan []byte
	register   chan *Client
	unregister chan *Client

	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*Client]struct{}),
		events:      make(chan []byte, 256),
		register:    make(chan *Client, 64),
		unregister:  make(chan *Client, 64),
		logger:      logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mu.Lock()
			h.subscribers[client] = struct{}{}
			total := len(h.subscribers)
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Printf("[Feed] Subscriber joined | total=%d", total)
			}

		case client := <-h.unregister:
			h.drop(client)

		case event := <-h.events:
			h.deliver(event)
		}
	}
}

// drop removes a subscriber and closes its send channel. Safe to call for a
// client that already left.
func (h *Hub) drop(client *Client) {
	if client == nil {
		return
	}
	h.mu.Lock()
	_, ok := h.subscribers[client]
	if ok {
		delete(h.subscribers, client)
		close(client.send)
	}
	total := len(h.subscribers)
	h.mu.Unlock()
	if ok && h.logger != nil {
		h.logger.Printf("[Feed] Subscriber left | total=%d", total)
	}
}

// deliver pushes one event to every subscriber. Stalled subscribers are
// collected and dropped directly; eviction never goes back through the
// unregister channel the Run loop itself drains.
func (h *Hub) deliver(event []byte) {
	h.mu.Lock()
	var stalled []*Client
	for client := range h.subscribers {
		select {
		case client.send <- event:
		default:
			stalled = append(stalled, client)
		}
	}
	delivered := len(h.subscribers) - len(stalled)
	h.mu.Unlock()

	for _, client := range stalled {
		h.drop(client)
	}

	if h.logger != nil {
		h.logger.Printf("[Feed] Event delivered | subscribers=%d dropped=%d", delivered, len(stalled))
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) Broadcast(event []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- event:
	default:
		if h.logger != nil {
			h.logger.Printf("[Feed] Event dropped | reason=buffer_full")
		}
	}
}
