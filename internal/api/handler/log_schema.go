package handler

import (
	"time"

	"github.com/taplog/attendance-system/internal/core/domain"
	"github.com/taplog/attendance-system/internal/core/ports"
)

type logResponse struct {
	ID        string    `json:"_id"`
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

type deletedLogResponse struct {
	Message    string      `json:"message"`
	DeletedLog logResponse `json:"deletedLog"`
}

type summaryLogEntryResponse struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

type userSummaryResponse struct {
	UID         string                    `json:"uid"`
	Name        string                    `json:"name"`
	TapInCount  int                       `json:"tapInCount"`
	TapOutCount int                       `json:"tapOutCount"`
	TotalTaps   int                       `json:"totalTaps"`
	IsComplete  bool                      `json:"isComplete"`
	Logs        []summaryLogEntryResponse `json:"logs"`
}

type dateSummaryResponse struct {
	Date       string                `json:"date"`
	TotalUsers int                   `json:"totalUsers"`
	Users      []userSummaryResponse `json:"users"`
}

type debugOverviewResponse struct {
	Today          string        `json:"today"`
	TodayLogsCount int           `json:"todayLogsCount"`
	TodayLogs      []logResponse `json:"todayLogs"`
	RecentLogs     []logResponse `json:"recentLogs"`
	TotalLogsInDB  int64         `json:"totalLogsInDB"`
}

type debugUIDResponse struct {
	UID            string        `json:"uid"`
	Today          string        `json:"today"`
	UserExists     bool          `json:"userExists"`
	User           *debugUser    `json:"user"`
	TodayLogsCount int           `json:"todayLogsCount"`
	TodayLogs      []logResponse `json:"todayLogs"`
	RecentUserLogs []logResponse `json:"recentUserLogs"`
}

type debugUser struct {
	Name string `json:"name"`
	UID  string `json:"uid"`
}

func toLogResponse(e *domain.AttendanceEvent) logResponse {
	return logResponse{
		ID:        e.ID,
		UID:       e.UID,
		Name:      e.Name,
		Date:      e.Date,
		Type:      string(e.Kind),
		Timestamp: e.Timestamp,
	}
}

func toLogResponses(events []*domain.AttendanceEvent) []logResponse {
	out := make([]logResponse, len(events))
	for i, e := range events {
		out[i] = toLogResponse(e)
	}
	return out
}

func toSummaryResponse(s *ports.DateSummary) dateSummaryResponse {
	users := make([]userSummaryResponse, len(s.Users))
	for i, u := range s.Users {
		logs := make([]summaryLogEntryResponse, len(u.Logs))
		for j, l := range u.Logs {
			logs[j] = summaryLogEntryResponse{Type: string(l.Kind), Timestamp: l.Timestamp}
		}
		users[i] = userSummaryResponse{
			UID:         u.UID,
			Name:        u.Name,
			TapInCount:  u.TapInCount,
			TapOutCount: u.TapOutCount,
			TotalTaps:   u.TotalTaps,
			IsComplete:  u.IsComplete,
			Logs:        logs,
		}
	}
	return dateSummaryResponse{
		Date:       s.Date,
		TotalUsers: s.TotalUsers,
		Users:      users,
	}
}
