package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taplog/attendance-system/internal/api/metrics"
	"github.com/taplog/attendance-system/internal/core/ports"
	"github.com/taplog/attendance-system/internal/core/uid"
)

// maxTapBody caps the raw payload read from a reader. Real badge payloads
// are a few dozen bytes.
const maxTapBody = 4096

// TapHandler handles tap ingestion from RFID readers.
type TapHandler struct {
	service ports.TapService
	log     zerolog.Logger
}

func NewTapHandler(service ports.TapService, log zerolog.Logger) *TapHandler {
	return &TapHandler{service: service, log: log}
}

// Receive handles POST /api/tap — resolves a raw badge scan into an
// attendance event. The body may be JSON ({"uid": "..."}) or raw reader
// output; any content type is accepted.
//
// @Summary      Ingest a badge tap
// @Tags         tap
// @Accept       plain
// @Produce      json
// @Param        body  body      string  true  "Raw scan payload"
// @Success      200   {object}  tapRecordedResponse
// @Failure      400   {object}  tapRejectedResponse
// @Failure      500   {object}  tapRejectedResponse
// @Router       /api/tap [post]
func (h *TapHandler) Receive(c echo.Context) error {
	start := time.Now()

	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxTapBody))
	if err != nil {
		return h.respond(c, start, http.StatusBadRequest, ports.CodeMalformedBody, tapRejectedResponse{
			Error:   true,
			Message: "could not read request body",
			Code:    ports.CodeMalformedBody,
		})
	}

	result, err := h.service.Resolve(c.Request().Context(), raw, time.Now())
	if err != nil {
		return h.resolveError(c, start, err)
	}

	switch result.Code {
	case ports.CodeNotRegistered:
		return h.respond(c, start, http.StatusOK, result.Code, tapUnregisteredResponse{
			Error:   false,
			Message: fmt.Sprintf("UID %s not registered. Please register this UID first.", result.UID),
			Code:    result.Code,
			UID:     result.UID,
			RegistrationHelp: registrationHelp{
				Message: "To register this UID, use: POST /api/users",
				Example: registrationExample{
					Name:        "Your Name",
					UID:         result.UID,
					Email:       "your.email@example.com",
					PhoneNumber: "+639123456789",
					Gender:      "Male",
				},
			},
		})

	case ports.CodeLimitReached:
		return h.respond(c, start, http.StatusOK, result.Code, tapLimitResponse{
			Error:   false,
			Message: "Daily tap limit reached.",
			Name:    result.Name,
			Code:    result.Code,
		})

	default:
		metrics.TapsRecordedTotal.WithLabelValues(string(result.Kind)).Inc()
		return h.respond(c, start, http.StatusOK, result.Code, tapRecordedResponse{
			Error:     false,
			Message:   fmt.Sprintf("%s recorded successfully", result.Kind),
			Name:      result.Name,
			Type:      string(result.Kind),
			Timestamp: result.Timestamp,
			Date:      result.Date,
			Code:      result.Code,
			UID:       result.UID,
			EventID:   result.EventID,
			Logs:      result.Recent,
		})
	}
}

// resolveError maps normalization rejections to 400s with their code, and
// everything else to a generic 500. Rejections are client-fault and are
// never retried server-side; the reader resubmits on 500.
func (h *TapHandler) resolveError(c echo.Context, start time.Time, err error) error {
	var status int
	var code, message string

	switch {
	case errors.Is(err, uid.ErrMalformedBody):
		status, code = http.StatusBadRequest, ports.CodeMalformedBody
		message = "Malformed body and UID could not be extracted"
	case errors.Is(err, uid.ErrMissingUID):
		status, code = http.StatusBadRequest, ports.CodeMissingUID
		message = "UID is required"
	case errors.Is(err, uid.ErrInvalidUID):
		status, code = http.StatusBadRequest, ports.CodeInvalidUID
		message = "Invalid UID format"
	default:
		h.log.Error().Err(err).Msg("tap resolution failed")
		status, code = http.StatusInternalServerError, ports.CodeServerError
		message = "Internal server error"
	}

	return h.respond(c, start, status, code, tapRejectedResponse{
		Error:   true,
		Message: message,
		Code:    code,
	})
}

func (h *TapHandler) respond(c echo.Context, start time.Time, status int, code string, body any) error {
	metrics.TapOutcomesTotal.WithLabelValues(code).Inc()
	metrics.TapResolutionDuration.WithLabelValues(code).Observe(time.Since(start).Seconds())
	return c.JSON(status, body)
}
