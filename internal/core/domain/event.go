package domain

import (
	"errors"
	"time"
)

// TapKind is the direction of an attendance tap.
type TapKind string

const (
	TapIn  TapKind = "tap-in"
	TapOut TapKind = "tap-out"
)

// DefaultDailyTapLimit is the maximum number of accepted taps per identifier
// per calendar day.
const DefaultDailyTapLimit = 8

// DateFormat is the calendar-date layout used for event dates (YYYY-MM-DD).
const DateFormat = "2006-01-02"

var ErrEventNotFound = errors.New("attendance event not found")

// NextTapKind applies the alternation rule: with no events yet today, or a
// most recent event of tap-out, the next tap is a tap-in; otherwise tap-out.
func NextTapKind(mostRecent *AttendanceEvent) TapKind {
	if mostRecent == nil || mostRecent.Kind == TapOut {
		return TapIn
	}
	return TapOut
}

// LocalDate renders the instant as a YYYY-MM-DD calendar date in the given
// zone. The attendance day boundary follows the physical location of the
// readers, not the server clock's zone.
func LocalDate(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(DateFormat)
}

// AttendanceEvent is a single recorded tap. Events are immutable once
// written; the name is denormalized from the user directory at write time so
// later edits to the user never rewrite history.
type AttendanceEvent struct {
	ID        string    `json:"_id" bson:"_id,omitempty"`
	UID       string    `json:"uid" bson:"uid"`
	Name      string    `json:"name" bson:"name"`
	Date      string    `json:"date" bson:"date"`
	Kind      TapKind   `json:"type" bson:"type"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
