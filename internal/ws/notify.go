package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type FreelancersUpdatedEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Imported  int    `json:"imported"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyFreelancersUpdated tells subscribers the directory changed so
// they can refresh their search results.
func NotifyFreelancersUpdated(source string, imported int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	source = strings.ToLower(strings.TrimSpace(source))
	if source == "" {
		return
	}

	evt := FreelancersUpdatedEvent{
		Type:      "freelancers_updated",
		Source:    source,
		Imported:  imported,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
