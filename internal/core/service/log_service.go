package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taplog/attendance-system/internal/core/domain"
	"github.com/taplog/attendance-system/internal/core/ports"
	coreuid "github.com/taplog/attendance-system/internal/core/uid"
)

const debugRecentLimit = 10

type logService struct {
	events ports.EventRepository
	users  ports.UserRepository
	loc    *time.Location
	log    zerolog.Logger
}

// NewLogService returns a LogService over the ledger and user directory.
func NewLogService(events ports.EventRepository, users ports.UserRepository, loc *time.Location, log zerolog.Logger) ports.LogService {
	if loc == nil {
		loc = time.UTC
	}
	return &logService{events: events, users: users, loc: loc, log: log}
}

func (s *logService) ListAll(ctx context.Context) ([]*domain.AttendanceEvent, error) {
	return s.events.ListAll(ctx)
}

func (s *logService) ListByDate(ctx context.Context, date string) ([]*domain.AttendanceEvent, error) {
	return s.events.ListByDate(ctx, date)
}

func (s *logService) ListByUID(ctx context.Context, rawUID string) ([]*domain.AttendanceEvent, error) {
	return s.events.ListByUID(ctx, coreuid.Canonicalize(rawUID))
}

func (s *logService) ListToday(ctx context.Context, now time.Time) ([]*domain.AttendanceEvent, error) {
	return s.events.ListByDate(ctx, domain.LocalDate(now, s.loc))
}

func (s *logService) Delete(ctx context.Context, id string) (*domain.AttendanceEvent, error) {
	deleted, err := s.events.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", id).Str("uid", deleted.UID).Msg("attendance event deleted")
	return deleted, nil
}

// DebugOverview assembles the operator view: today's activity plus the
// ledger tail and total.
func (s *logService) DebugOverview(ctx context.Context, now time.Time) (*ports.DebugOverview, error) {
	today := domain.LocalDate(now, s.loc)

	todays, err := s.events.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("debug overview: %w", err)
	}
	recent, err := s.events.ListRecent(ctx, debugRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("debug overview: %w", err)
	}
	total, err := s.events.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("debug overview: %w", err)
	}

	overview := &ports.DebugOverview{
		Today:         today,
		TodayCount:    len(todays),
		TodayEvents:   todays,
		RecentEvents:  recent,
		TotalInLedger: total,
	}
	if len(overview.TodayEvents) > debugRecentLimit {
		overview.TodayEvents = overview.TodayEvents[:debugRecentLimit]
	}
	return overview, nil
}

// DebugUID surfaces everything known about one identifier.
func (s *logService) DebugUID(ctx context.Context, rawUID string, now time.Time) (*ports.DebugUIDReport, error) {
	cleanUID := coreuid.Canonicalize(rawUID)
	today := domain.LocalDate(now, s.loc)

	report := &ports.DebugUIDReport{UID: cleanUID, Today: today}

	user, err := s.users.FindByUID(ctx, cleanUID)
	switch {
	case err == nil:
		report.Registered = true
		report.User = user
	case errors.Is(err, domain.ErrUserNotFound):
		// Unregistered is exactly what this endpoint exists to show.
	default:
		return nil, fmt.Errorf("debug uid %s: %w", cleanUID, err)
	}

	todays, err := s.events.ListByUIDAndDate(ctx, cleanUID, today)
	if err != nil {
		return nil, fmt.Errorf("debug uid %s: %w", cleanUID, err)
	}
	report.TodayCount = len(todays)
	report.TodayEvents = todays

	all, err := s.events.ListByUID(ctx, cleanUID)
	if err != nil {
		return nil, fmt.Errorf("debug uid %s: %w", cleanUID, err)
	}
	if len(all) > debugRecentLimit {
		all = all[:debugRecentLimit]
	}
	report.RecentEvents = all

	return report, nil
}
