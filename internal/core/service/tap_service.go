package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taplog/attendance-system/internal/core/domain"
	"github.com/taplog/attendance-system/internal/core/ports"
	coreuid "github.com/taplog/attendance-system/internal/core/uid"
)

// recentTail is how many ledger events ride along on a SUCCESS response.
const recentTail = 10

// TapLocker serializes the read-then-decide-then-write window per
// identifier. Locking is advisory (Redis): two near-simultaneous taps for
// the same badge could otherwise both read the same snapshot and record two
// identical-kind events.
type TapLocker interface {
	// Acquire blocks briefly for the identifier's lock and returns a release
	// func. An error means the lock backend is unavailable, not that the tap
	// must fail.
	Acquire(ctx context.Context, uid string) (func(), error)
}

type tapService struct {
	users    ports.UserRepository
	events   ports.EventRepository
	notifier ports.TapNotifier
	locker   TapLocker
	loc      *time.Location
	limit    int
	log      zerolog.Logger
}

// NewTapService returns a TapService implementation. loc sets the
// calendar-day boundary; limit <= 0 falls back to the default daily limit.
// locker may be nil, in which case concurrent same-badge taps race as
// documented on TapLocker.
func NewTapService(
	users ports.UserRepository,
	events ports.EventRepository,
	notifier ports.TapNotifier,
	locker TapLocker,
	loc *time.Location,
	limit int,
	log zerolog.Logger,
) ports.TapService {
	if limit <= 0 {
		limit = domain.DefaultDailyTapLimit
	}
	if loc == nil {
		loc = time.UTC
	}
	return &tapService{
		users:    users,
		events:   events,
		notifier: notifier,
		locker:   locker,
		loc:      loc,
		limit:    limit,
		log:      log,
	}
}

// Resolve normalizes, resolves and records a single badge scan.
func (s *tapService) Resolve(ctx context.Context, raw []byte, now time.Time) (*ports.TapResult, error) {
	// 1. Normalize. Rejections carry no side effects.
	cleanUID, err := coreuid.Normalize(raw)
	if err != nil {
		s.log.Debug().Err(err).Msg("tap rejected at normalization")
		return nil, err
	}

	// 2. Directory lookup. Unregistered is an outcome, not an error.
	user, err := s.users.FindByUID(ctx, cleanUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Info().Str("uid", cleanUID).Msg("unregistered uid tapped")
			return &ports.TapResult{Code: ports.CodeNotRegistered, UID: cleanUID}, nil
		}
		return nil, fmt.Errorf("resolve tap: lookup user: %w", err)
	}

	today := domain.LocalDate(now, s.loc)

	// 3. Serialize the decide-and-append window per identifier. Lock backend
	// failure degrades to the unguarded race; the tap still goes through.
	if s.locker != nil {
		release, lockErr := s.locker.Acquire(ctx, cleanUID)
		if lockErr != nil {
			s.log.Warn().Err(lockErr).Str("uid", cleanUID).Msg("tap lock unavailable, proceeding unguarded")
		} else {
			defer release()
		}
	}

	// 4. Today's events, most recent first.
	todays, err := s.events.ListByUIDAndDate(ctx, cleanUID, today)
	if err != nil {
		return nil, fmt.Errorf("resolve tap: fetch today's events: %w", err)
	}

	// 5. Daily limit. Reported as success with no new event.
	if len(todays) >= s.limit {
		s.log.Info().Str("uid", cleanUID).Str("date", today).Int("count", len(todays)).Msg("daily tap limit reached")
		return &ports.TapResult{Code: ports.CodeLimitReached, UID: cleanUID, Name: user.Name}, nil
	}

	// 6. Alternation rule.
	var mostRecent *domain.AttendanceEvent
	if len(todays) > 0 {
		mostRecent = todays[0]
	}
	kind := domain.NextTapKind(mostRecent)

	// 7. Append. Durable once Insert returns; a disconnecting caller never
	// rolls this back.
	event := &domain.AttendanceEvent{
		ID:        uuid.NewString(),
		UID:       cleanUID,
		Name:      user.Name,
		Date:      today,
		Kind:      kind,
		Timestamp: now,
	}
	if err := s.events.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("resolve tap: append event: %w", err)
	}

	// Ledger tail for the response. Non-fatal: the tap is already recorded.
	recent, err := s.events.ListRecent(ctx, recentTail)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to fetch recent events for tap response")
		recent = []*domain.AttendanceEvent{event}
	}

	result := &ports.TapResult{
		Code:      ports.CodeSuccess,
		UID:       cleanUID,
		Name:      user.Name,
		Kind:      kind,
		Timestamp: event.Timestamp,
		Date:      today,
		EventID:   event.ID,
		Recent:    recent,
	}

	s.log.Info().
		Str("uid", cleanUID).
		Str("name", user.Name).
		Str("type", string(kind)).
		Str("date", today).
		Msg("tap recorded")

	// 8. Best-effort fan-out. Never blocks or fails the tap.
	if s.notifier != nil {
		s.notifier.PublishTap(ctx, result)
	}

	return result, nil
}
