package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taplog/attendance-system/internal/core/domain"
	"github.com/taplog/attendance-system/internal/core/ports"
	"github.com/taplog/attendance-system/internal/core/uid"
)

type stubTapService struct {
	resolveFn func(ctx context.Context, raw []byte, now time.Time) (*ports.TapResult, error)
	lastRaw   []byte
}

func (s *stubTapService) Resolve(ctx context.Context, raw []byte, now time.Time) (*ports.TapResult, error) {
	s.lastRaw = raw
	return s.resolveFn(ctx, raw, now)
}

func tapRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/tap", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestTapHandler_Recorded(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	recorded := &domain.AttendanceEvent{ID: "evt-1", UID: "AB12CD34", Name: "Juan", Date: "2026-09-01", Kind: domain.TapIn, Timestamp: now}
	stub := &stubTapService{
		resolveFn: func(_ context.Context, _ []byte, _ time.Time) (*ports.TapResult, error) {
			return &ports.TapResult{
				Code:      ports.CodeSuccess,
				UID:       "AB12CD34",
				Name:      "Juan",
				Kind:      domain.TapIn,
				Timestamp: now,
				Date:      "2026-09-01",
				EventID:   "evt-1",
				Recent:    []*domain.AttendanceEvent{recorded},
			}, nil
		},
	}
	handler := NewTapHandler(stub, zerolog.Nop())

	c, rec := tapRequest(t, `{"uid":"ab12cd34"}`)
	if err := handler.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["error"] != false {
		t.Error("expected error=false")
	}
	if resp["code"] != ports.CodeSuccess {
		t.Errorf("expected SUCCESS, got %v", resp["code"])
	}
	if resp["message"] != "tap-in recorded successfully" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
	if resp["type"] != "tap-in" || resp["uid"] != "AB12CD34" || resp["_id"] != "evt-1" {
		t.Errorf("unexpected payload: %+v", resp)
	}
	logs, ok := resp["logs"].([]any)
	if !ok || len(logs) != 1 {
		t.Errorf("expected 1 log entry, got %v", resp["logs"])
	}
	if string(stub.lastRaw) != `{"uid":"ab12cd34"}` {
		t.Errorf("handler must pass the raw body through, got %q", stub.lastRaw)
	}
}

func TestTapHandler_NotRegistered(t *testing.T) {
	stub := &stubTapService{
		resolveFn: func(_ context.Context, _ []byte, _ time.Time) (*ports.TapResult, error) {
			return &ports.TapResult{Code: ports.CodeNotRegistered, UID: "DEADBEEF"}, nil
		},
	}
	handler := NewTapHandler(stub, zerolog.Nop())

	c, rec := tapRequest(t, `{"uid":"DEADBEEF"}`)
	if err := handler.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["code"] != ports.CodeNotRegistered {
		t.Errorf("expected NOT_REGISTERED, got %v", resp["code"])
	}
	if resp["uid"] != "DEADBEEF" {
		t.Errorf("expected uid in response, got %v", resp["uid"])
	}
	help, ok := resp["registrationHelp"].(map[string]any)
	if !ok {
		t.Fatalf("expected registrationHelp, got %+v", resp)
	}
	example, ok := help["example"].(map[string]any)
	if !ok || example["uid"] != "DEADBEEF" {
		t.Errorf("expected example prefilled with the uid, got %+v", help)
	}
}

func TestTapHandler_LimitReached(t *testing.T) {
	stub := &stubTapService{
		resolveFn: func(_ context.Context, _ []byte, _ time.Time) (*ports.TapResult, error) {
			return &ports.TapResult{Code: ports.CodeLimitReached, UID: "AB12CD34", Name: "Juan"}, nil
		},
	}
	handler := NewTapHandler(stub, zerolog.Nop())

	c, rec := tapRequest(t, `{"uid":"AB12CD34"}`)
	if err := handler.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["code"] != ports.CodeLimitReached {
		t.Errorf("expected LIMIT_REACHED, got %v", resp["code"])
	}
	if resp["name"] != "Juan" {
		t.Errorf("expected resolved name, got %v", resp["name"])
	}
}

func TestTapHandler_NormalizationRejections(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
	}{
		{"malformed", uid.ErrMalformedBody, ports.CodeMalformedBody},
		{"missing", uid.ErrMissingUID, ports.CodeMissingUID},
		{"invalid", uid.ErrInvalidUID, ports.CodeInvalidUID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubTapService{
				resolveFn: func(_ context.Context, _ []byte, _ time.Time) (*ports.TapResult, error) {
					return nil, tc.err
				},
			}
			handler := NewTapHandler(stub, zerolog.Nop())

			c, rec := tapRequest(t, `whatever`)
			if err := handler.Receive(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}

			resp := decodeBody(t, rec)
			if resp["error"] != true {
				t.Error("expected error=true")
			}
			if resp["code"] != tc.code {
				t.Errorf("expected code %s, got %v", tc.code, resp["code"])
			}
		})
	}
}

func TestTapHandler_ResolutionFailure(t *testing.T) {
	stub := &stubTapService{
		resolveFn: func(_ context.Context, _ []byte, _ time.Time) (*ports.TapResult, error) {
			return nil, context.DeadlineExceeded
		},
	}
	handler := NewTapHandler(stub, zerolog.Nop())

	c, rec := tapRequest(t, `{"uid":"AB12CD34"}`)
	if err := handler.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["code"] != ports.CodeServerError {
		t.Errorf("expected SERVER_ERROR, got %v", resp["code"])
	}
	if resp["message"] != "Internal server error" {
		t.Errorf("internal details must not leak, got %v", resp["message"])
	}
}
