// Package uid turns raw scanned payloads into canonical badge identifiers.
//
// A canonical identifier is uppercase hexadecimal, at least 6 characters.
// Normalization is pure and idempotent: feeding a canonical identifier back
// in returns it unchanged.
package uid

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const minLength = 6

var ErrMalformedBody = errors.New("malformed body and uid could not be extracted")
var ErrMissingUID = errors.New("uid is required")
var ErrInvalidUID = errors.New("invalid uid format")

// hexRun matches the first contiguous run of 6+ hex characters. Used as the
// recovery heuristic when a reader sends an unparseable payload. Lossy by
// nature: the first run wins, whatever surrounds it.
var hexRun = regexp.MustCompile(`[0-9A-Fa-f]{6,}`)

// nonHex strips every character outside the canonical alphabet.
var nonHex = regexp.MustCompile(`[^0-9A-F]`)

// Normalize resolves a raw request body to a canonical identifier.
//
// The body may be a JSON object carrying a "uid" field, or arbitrary bytes
// from a reader that does not speak JSON. Non-JSON bodies fall back to
// scanning for the first hex run of 6+ characters. Rejections are
// ErrMalformedBody (nothing recoverable), ErrMissingUID (a structured payload
// without a uid) and ErrInvalidUID (too short after canonicalization).
func Normalize(raw []byte) (string, error) {
	rawUID, err := extract(raw)
	if err != nil {
		return "", err
	}

	clean := Canonicalize(rawUID)
	if len(clean) < minLength {
		return "", ErrInvalidUID
	}
	return clean, nil
}

func extract(raw []byte) (string, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Recovery heuristic for readers that send plain text.
		match := hexRun.FindString(string(raw))
		if match == "" {
			return "", ErrMalformedBody
		}
		return match, nil
	}

	v, ok := doc["uid"]
	if !ok || v == nil {
		return "", ErrMissingUID
	}
	switch s := v.(type) {
	case string:
		if s == "" {
			return "", ErrMissingUID
		}
		return s, nil
	case float64:
		// Readers occasionally send all-digit identifiers unquoted.
		return fmt.Sprintf("%.0f", s), nil
	default:
		return "", ErrMissingUID
	}
}

// Canonicalize strips whitespace, uppercases, and removes every non-hex
// character. It does not enforce a minimum length; Normalize does.
func Canonicalize(s string) string {
	return nonHex.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), "")
}
