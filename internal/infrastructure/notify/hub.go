// Package notify fans newly recorded tap events out to realtime observers.
//
// Recorded taps are published to a Redis channel; every instance runs a
// Bridge that forwards channel messages into its in-process Hub, which in
// turn feeds the connected SSE subscribers. One path for single- and
// multi-instance deployments alike.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/taplog/attendance-system/internal/core/domain"
	"github.com/taplog/attendance-system/internal/core/ports"
)

// subscriberBuffer bounds each subscriber channel. A subscriber that falls
// this far behind starts losing events rather than stalling the hub.
const subscriberBuffer = 16

// Hub broadcasts raw event payloads to its subscribers. Sends never block:
// slow subscribers drop messages.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
	log  zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subs: make(map[chan []byte]struct{}),
		log:  log,
	}
}

// Subscribe registers a new observer. The returned cancel func must be
// called when the observer disconnects.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast delivers a payload to every subscriber without blocking.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- payload:
		default:
			h.log.Warn().Msg("slow realtime subscriber, event dropped")
		}
	}
}

// SubscriberCount reports how many observers are currently connected.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// tapEventPayload is the wire shape pushed to realtime observers. It mirrors
// the SUCCESS response of the tap endpoint so the dashboard renders both the
// same way.
type tapEventPayload struct {
	Error     bool                      `json:"error"`
	Message   string                    `json:"message"`
	Name      string                    `json:"name"`
	Type      string                    `json:"type"`
	Timestamp time.Time                 `json:"timestamp"`
	Date      string                    `json:"date"`
	Code      string                    `json:"code"`
	UID       string                    `json:"uid"`
	EventID   string                    `json:"_id"`
	Logs      []*domain.AttendanceEvent `json:"logs"`
}

// EncodeTap renders a recorded tap result as the realtime wire payload.
func EncodeTap(result *ports.TapResult) ([]byte, error) {
	return json.Marshal(tapEventPayload{
		Error:     false,
		Message:   string(result.Kind) + " recorded successfully",
		Name:      result.Name,
		Type:      string(result.Kind),
		Timestamp: result.Timestamp,
		Date:      result.Date,
		Code:      result.Code,
		UID:       result.UID,
		EventID:   result.EventID,
		Logs:      result.Recent,
	})
}
