package handler

import (
	"time"

	"github.com/taplog/attendance-system/internal/core/domain"
)

// The tap endpoint speaks the reader protocol: every response carries an
// error flag, a human-readable message and an outcome code. These types are
// owned by the transport layer so the wire contract is not coupled to
// internal service changes.

type tapRejectedResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type registrationExample struct {
	Name        string `json:"name"`
	UID         string `json:"uid"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
}

type registrationHelp struct {
	Message string              `json:"message"`
	Example registrationExample `json:"example"`
}

type tapUnregisteredResponse struct {
	Error            bool             `json:"error"`
	Message          string           `json:"message"`
	Code             string           `json:"code"`
	UID              string           `json:"uid"`
	RegistrationHelp registrationHelp `json:"registrationHelp"`
}

type tapLimitResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Code    string `json:"code"`
}

type tapRecordedResponse struct {
	Error     bool                      `json:"error"`
	Message   string                    `json:"message"`
	Name      string                    `json:"name"`
	Type      string                    `json:"type"`
	Timestamp time.Time                 `json:"timestamp"`
	Date      string                    `json:"date"`
	Code      string                    `json:"code"`
	UID       string                    `json:"uid"`
	EventID   string                    `json:"_id"`
	Logs      []*domain.AttendanceEvent `json:"logs"`
}
