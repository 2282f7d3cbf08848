package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taplog/attendance-system/internal/api/metrics"
	"github.com/taplog/attendance-system/internal/core/ports"
)

// LogHandler exposes the attendance ledger: listings, the daily summary,
// admin deletion and the debug views.
type LogHandler struct {
	logs    ports.LogService
	summary ports.SummaryService
}

func NewLogHandler(logs ports.LogService, summary ports.SummaryService) *LogHandler {
	return &LogHandler{logs: logs, summary: summary}
}

// List handles GET /api/logs — every event, newest first.
//
// @Summary      List all attendance events
// @Tags         logs
// @Produce      json
// @Success      200  {array}  logResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c echo.Context) error {
	events, err := h.logs.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLogResponses(events))
}

// ListToday handles GET /api/logs/today.
//
// @Summary      List today's attendance events
// @Tags         logs
// @Produce      json
// @Success      200  {array}  logResponse
// @Router       /api/logs/today [get]
func (h *LogHandler) ListToday(c echo.Context) error {
	events, err := h.logs.ListToday(c.Request().Context(), time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLogResponses(events))
}

// ListByDate handles GET /api/logs/date/:date.
//
// @Summary      List attendance events for a date
// @Tags         logs
// @Produce      json
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {array}   logResponse
// @Router       /api/logs/date/{date} [get]
func (h *LogHandler) ListByDate(c echo.Context) error {
	events, err := h.logs.ListByDate(c.Request().Context(), c.Param("date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLogResponses(events))
}

// ListByUID handles GET /api/logs/user/:uid.
//
// @Summary      List attendance events for an identifier
// @Tags         logs
// @Produce      json
// @Param        uid  path      string  true  "Badge identifier"
// @Success      200  {array}   logResponse
// @Router       /api/logs/user/{uid} [get]
func (h *LogHandler) ListByUID(c echo.Context) error {
	events, err := h.logs.ListByUID(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLogResponses(events))
}

// Summary handles GET /api/logs/summary/:date — the per-identifier daily
// attendance summary.
//
// @Summary      Daily attendance summary
// @Tags         logs
// @Produce      json
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  dateSummaryResponse
// @Router       /api/logs/summary/{date} [get]
func (h *LogHandler) Summary(c echo.Context) error {
	summary, err := h.summary.Summarize(c.Request().Context(), c.Param("date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryResponse(summary))
}

// Delete handles DELETE /api/logs/:id — explicit admin removal of one event.
//
// @Summary      Delete an attendance event
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  deletedLogResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/logs/{id} [delete]
func (h *LogHandler) Delete(c echo.Context) error {
	deleted, err := h.logs.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.EventsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deletedLogResponse{
		Message:    "Log deleted successfully",
		DeletedLog: toLogResponse(deleted),
	})
}

// DebugOverview handles GET /api/debug/logs.
func (h *LogHandler) DebugOverview(c echo.Context) error {
	overview, err := h.logs.DebugOverview(c.Request().Context(), time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, debugOverviewResponse{
		Today:          overview.Today,
		TodayLogsCount: overview.TodayCount,
		TodayLogs:      toLogResponses(overview.TodayEvents),
		RecentLogs:     toLogResponses(overview.RecentEvents),
		TotalLogsInDB:  overview.TotalInLedger,
	})
}

// DebugUID handles GET /api/debug/uid/:uid.
func (h *LogHandler) DebugUID(c echo.Context) error {
	report, err := h.logs.DebugUID(c.Request().Context(), c.Param("uid"), time.Now())
	if err != nil {
		return err
	}

	resp := debugUIDResponse{
		UID:            report.UID,
		Today:          report.Today,
		UserExists:     report.Registered,
		TodayLogsCount: report.TodayCount,
		TodayLogs:      toLogResponses(report.TodayEvents),
		RecentUserLogs: toLogResponses(report.RecentEvents),
	}
	if report.User != nil {
		resp.User = &debugUser{Name: report.User.Name, UID: report.User.UID}
	}
	return c.JSON(http.StatusOK, resp)
}
