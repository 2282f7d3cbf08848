package ports

import (
	"context"

	"github.com/taplog/attendance-system/internal/core/domain"
)

// EventRepository is the attendance ledger: an append-only store of tap
// events. Events are never updated; deletion exists only for the explicit
// admin endpoint.
type EventRepository interface {
	// Insert appends a new event. The event is durable once this returns nil.
	Insert(ctx context.Context, event *domain.AttendanceEvent) error

	// ListByUIDAndDate returns one identifier's events for a date, most
	// recent first. This is the read the tap resolver decides on.
	ListByUIDAndDate(ctx context.Context, uid, date string) ([]*domain.AttendanceEvent, error)

	// ListByDate returns all events for a date, most recent first.
	ListByDate(ctx context.Context, date string) ([]*domain.AttendanceEvent, error)

	// ListByDateAscending returns all events for a date in chronological
	// order, as the summary aggregator consumes them.
	ListByDateAscending(ctx context.Context, date string) ([]*domain.AttendanceEvent, error)

	// ListByUID returns all events for an identifier, most recent first.
	ListByUID(ctx context.Context, uid string) ([]*domain.AttendanceEvent, error)

	// ListRecent returns the newest events across all identifiers, capped at limit.
	ListRecent(ctx context.Context, limit int64) ([]*domain.AttendanceEvent, error)

	// ListAll returns every event, most recent first.
	ListAll(ctx context.Context) ([]*domain.AttendanceEvent, error)

	// Delete removes a single event by ID and returns the deleted document.
	// Returns domain.ErrEventNotFound when no such event exists.
	Delete(ctx context.Context, id string) (*domain.AttendanceEvent, error)

	// Count returns the total number of events in the ledger.
	Count(ctx context.Context) (int64, error)
}
