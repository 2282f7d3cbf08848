package ports

import (
	"context"
	"time"

	"github.com/taplog/attendance-system/internal/core/domain"
)

// LogService exposes ledger queries to the transport layer.
type LogService interface {
	ListAll(ctx context.Context) ([]*domain.AttendanceEvent, error)
	ListByDate(ctx context.Context, date string) ([]*domain.AttendanceEvent, error)
	ListByUID(ctx context.Context, uid string) ([]*domain.AttendanceEvent, error)
	ListToday(ctx context.Context, now time.Time) ([]*domain.AttendanceEvent, error)
	// Delete removes one event. Admin-only; the ledger is otherwise append-only.
	Delete(ctx context.Context, id string) (*domain.AttendanceEvent, error)
	DebugOverview(ctx context.Context, now time.Time) (*DebugOverview, error)
	DebugUID(ctx context.Context, rawUID string, now time.Time) (*DebugUIDReport, error)
}

// DebugOverview is the operator view of ledger activity.
type DebugOverview struct {
	Today         string
	TodayCount    int
	TodayEvents   []*domain.AttendanceEvent
	RecentEvents  []*domain.AttendanceEvent
	TotalInLedger int64
}

// DebugUIDReport surfaces everything known about one identifier.
type DebugUIDReport struct {
	UID          string
	Today        string
	Registered   bool
	User         *domain.User
	TodayCount   int
	TodayEvents  []*domain.AttendanceEvent
	RecentEvents []*domain.AttendanceEvent
}

// UserDailySummary is one identifier's attendance for a date.
type UserDailySummary struct {
	UID         string
	Name        string
	TapInCount  int
	TapOutCount int
	TotalTaps   int
	// IsComplete reports that the day pairs up: equal tap-ins and tap-outs,
	// at least one of each.
	IsComplete bool
	Logs       []SummaryLogEntry
}

// SummaryLogEntry is a (kind, timestamp) pair in chronological order.
type SummaryLogEntry struct {
	Kind      domain.TapKind
	Timestamp time.Time
}

// DateSummary folds a whole date's ledger per identifier.
type DateSummary struct {
	Date       string
	TotalUsers int
	Users      []UserDailySummary
}

// SummaryService computes daily attendance summaries on demand. Summaries
// are derived views; nothing here is persisted.
type SummaryService interface {
	Summarize(ctx context.Context, date string) (*DateSummary, error)
}
