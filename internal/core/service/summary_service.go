package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taplog/attendance-system/internal/core/domain"
	"github.com/taplog/attendance-system/internal/core/ports"
)

type summaryService struct {
	events ports.EventRepository
	log    zerolog.Logger
}

// NewSummaryService returns a SummaryService backed by the given ledger.
func NewSummaryService(events ports.EventRepository, log zerolog.Logger) ports.SummaryService {
	return &summaryService{events: events, log: log}
}

// Summarize folds one date's ledger into per-identifier statistics.
func (s *summaryService) Summarize(ctx context.Context, date string) (*ports.DateSummary, error) {
	events, err := s.events.ListByDateAscending(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", date, err)
	}

	users := foldSummaries(events)
	s.log.Debug().Str("date", date).Int("users", len(users)).Msg("summary generated")

	return &ports.DateSummary{
		Date:       date,
		TotalUsers: len(users),
		Users:      users,
	}, nil
}

// foldSummaries groups chronologically ordered events by identifier. Pure:
// no I/O, no mutation of the input. The name on the earliest event wins —
// summaries reflect what was recorded, not the directory's current state.
func foldSummaries(events []*domain.AttendanceEvent) []ports.UserDailySummary {
	grouped := make(map[string][]*domain.AttendanceEvent)
	order := make([]string, 0)
	for _, e := range events {
		if _, seen := grouped[e.UID]; !seen {
			order = append(order, e.UID)
		}
		grouped[e.UID] = append(grouped[e.UID], e)
	}

	summaries := make([]ports.UserDailySummary, 0, len(order))
	for _, uid := range order {
		group := grouped[uid]

		var tapIn, tapOut int
		logs := make([]ports.SummaryLogEntry, 0, len(group))
		for _, e := range group {
			switch e.Kind {
			case domain.TapIn:
				tapIn++
			case domain.TapOut:
				tapOut++
			}
			logs = append(logs, ports.SummaryLogEntry{Kind: e.Kind, Timestamp: e.Timestamp})
		}

		summaries = append(summaries, ports.UserDailySummary{
			UID:         uid,
			Name:        group[0].Name,
			TapInCount:  tapIn,
			TapOutCount: tapOut,
			TotalTaps:   len(group),
			IsComplete:  tapIn == tapOut && tapIn > 0,
			Logs:        logs,
		})
	}
	return summaries
}
