package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taplog/attendance-system/internal/core/domain"
)

func seededLogService(t *testing.T) (*stubEventRepo, *stubUserRepo, *logService) {
	t.Helper()
	events := newStubEventRepo()
	users := newStubUserRepo()
	svc := NewLogService(events, users, manila, discardLogger).(*logService)
	return events, users, svc
}

func TestLogService_ListByUIDCanonicalizesInput(t *testing.T) {
	events, _, svc := seededLogService(t)
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, manila)
	_ = events.Insert(context.Background(), event("AB12CD34", "Juan", "2026-09-01", domain.TapIn, base))

	got, err := svc.ListByUID(context.Background(), "ab:12:cd:34")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event for canonicalized uid, got %d", len(got))
	}
}

func TestLogService_ListTodayUsesConfiguredZone(t *testing.T) {
	events, _, svc := seededLogService(t)
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, manila)
	_ = events.Insert(context.Background(), event("AB12CD34", "Juan", "2026-09-01", domain.TapIn, base))
	_ = events.Insert(context.Background(), event("AB12CD34", "Juan", "2026-08-31", domain.TapOut, base.Add(-24*time.Hour)))

	got, err := svc.ListToday(context.Background(), time.Date(2026, 9, 1, 22, 0, 0, 0, manila))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Date != "2026-09-01" {
		t.Fatalf("expected only today's event, got %d", len(got))
	}
}

func TestLogService_DeleteMissingEvent(t *testing.T) {
	_, _, svc := seededLogService(t)

	if _, err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestLogService_DeleteReturnsDeletedEvent(t *testing.T) {
	events, _, svc := seededLogService(t)
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, manila)
	e := event("AB12CD34", "Juan", "2026-09-01", domain.TapIn, base)
	_ = events.Insert(context.Background(), e)

	deleted, err := svc.Delete(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != e.ID {
		t.Errorf("expected deleted event %s, got %s", e.ID, deleted.ID)
	}
	if len(events.events) != 0 {
		t.Errorf("expected empty ledger after delete, got %d", len(events.events))
	}
}

func TestLogService_DebugOverview(t *testing.T) {
	events, _, svc := seededLogService(t)
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, manila)
	_ = events.Insert(context.Background(), event("AB12CD34", "Juan", "2026-08-31", domain.TapIn, base.Add(-24*time.Hour)))
	_ = events.Insert(context.Background(), event("AB12CD34", "Juan", "2026-09-01", domain.TapIn, base))
	_ = events.Insert(context.Background(), event("FFEE0011", "Maria", "2026-09-01", domain.TapIn, base.Add(time.Minute)))

	overview, err := svc.DebugOverview(context.Background(), base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Today != "2026-09-01" {
		t.Errorf("expected today 2026-09-01, got %s", overview.Today)
	}
	if overview.TodayCount != 2 {
		t.Errorf("expected 2 events today, got %d", overview.TodayCount)
	}
	if overview.TotalInLedger != 3 {
		t.Errorf("expected 3 events in ledger, got %d", overview.TotalInLedger)
	}
	if len(overview.RecentEvents) != 3 {
		t.Errorf("expected 3 recent events, got %d", len(overview.RecentEvents))
	}
}

func TestLogService_DebugUID(t *testing.T) {
	events, users, svc := seededLogService(t)
	registeredUser(users, "AB12CD34", "Juan")
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, manila)
	_ = events.Insert(context.Background(), event("AB12CD34", "Juan", "2026-09-01", domain.TapIn, base))

	report, err := svc.DebugUID(context.Background(), "ab12cd34", base.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Registered || report.User == nil {
		t.Error("expected a registered user in the report")
	}
	if report.UID != "AB12CD34" {
		t.Errorf("expected canonical uid, got %s", report.UID)
	}
	if report.TodayCount != 1 {
		t.Errorf("expected 1 event today, got %d", report.TodayCount)
	}
}

func TestLogService_DebugUIDUnregistered(t *testing.T) {
	_, _, svc := seededLogService(t)

	report, err := svc.DebugUID(context.Background(), "DEADBEEF", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Registered || report.User != nil {
		t.Error("expected an unregistered report")
	}
}
