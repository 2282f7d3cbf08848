package ports

import (
	"context"
	"time"

	"github.com/taplog/attendance-system/internal/core/domain"
)

// Outcome codes carried in every tap response.
const (
	CodeSuccess       = "SUCCESS"
	CodeNotRegistered = "NOT_REGISTERED"
	CodeLimitReached  = "LIMIT_REACHED"
	CodeMalformedBody = "MALFORMED_BODY"
	CodeMissingUID    = "MISSING_UID"
	CodeInvalidUID    = "INVALID_UID"
	CodeServerError   = "SERVER_ERROR"
)

// TapResult is the resolved outcome of one badge scan. Code is always set;
// the remaining fields depend on it. NOT_REGISTERED and LIMIT_REACHED are
// expected operational states and come back as results, not errors.
type TapResult struct {
	Code      string
	UID       string
	Name      string
	Kind      domain.TapKind
	Timestamp time.Time
	Date      string
	EventID   string
	// Recent holds the ledger tail (10 newest events) on SUCCESS.
	Recent []*domain.AttendanceEvent
}

// TapService is the tap-resolution engine.
type TapService interface {
	// Resolve normalizes the raw scan payload, resolves the identifier and
	// records the alternating tap event. Normalization rejections surface as
	// uid sentinel errors; persistence failures as wrapped errors. The now
	// argument is injected so the calendar-day boundary is testable.
	Resolve(ctx context.Context, raw []byte, now time.Time) (*TapResult, error)
}

// TapNotifier fans recorded taps out to realtime observers. Publishing is
// best-effort: implementations must not block the tap path and have no error
// to return.
type TapNotifier interface {
	PublishTap(ctx context.Context, result *TapResult)
}
