package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taplog/attendance-system/internal/api/metrics"
	"github.com/taplog/attendance-system/internal/infrastructure/notify"
)

// EventsHandler streams recorded taps to dashboards over Server-Sent Events.
type EventsHandler struct {
	hub *notify.Hub
	log zerolog.Logger
}

func NewEventsHandler(hub *notify.Hub, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, log: log}
}

// Stream handles GET /api/events — an SSE stream carrying one "new-log"
// event per recorded tap. The connection stays open until the client
// disconnects.
func (h *EventsHandler) Stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	events, cancel := h.hub.Subscribe()
	defer cancel()

	metrics.RealtimeSubscribers.Inc()
	defer metrics.RealtimeSubscribers.Dec()

	h.log.Debug().Msg("realtime subscriber connected")
	defer h.log.Debug().Msg("realtime subscriber disconnected")

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case payload := <-events:
			if _, err := fmt.Fprintf(res, "event: new-log\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
