package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type ListingsUpdatedEvent struct {
	Type      string `json:"type"`
	Category  string `json:"category"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyListingsUpdated broadcasts a listings_updated event after an ATS
// sync touches the given department category. An empty category means the
// whole board changed.
func NotifyListingsUpdated(category string, source string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	category = strings.ToLower(strings.TrimSpace(category))

	evt := ListingsUpdatedEvent{
		Type:      "listings_updated",
		Category:  category,
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
