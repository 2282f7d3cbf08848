package uid

import (
	"errors"
	"testing"
)

func TestNormalize_JSONPayload(t *testing.T) {
	got, err := Normalize([]byte(`{"uid":"ab12cd"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "AB12CD" {
		t.Errorf("expected AB12CD, got %q", got)
	}
}

func TestNormalize_JSONPayloadWithNoise(t *testing.T) {
	// Whitespace and separators are stripped during canonicalization.
	got, err := Normalize([]byte(`{"uid":"  ab:12:cd:04 "}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "AB12CD04" {
		t.Errorf("expected AB12CD04, got %q", got)
	}
}

func TestNormalize_RecoversHexRunFromGarbage(t *testing.T) {
	// Undecodable body: the first run of 6+ hex chars wins. The run starts
	// wherever hex characters start, so the trailing "e" of "garbage" is
	// part of the recovered identifier.
	got, err := Normalize([]byte("garbage123ABCDE7more"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "E123ABCDE7" {
		t.Errorf("expected E123ABCDE7, got %q", got)
	}
}

func TestNormalize_RecoveryStartsAtFirstHexCharacter(t *testing.T) {
	// No hex characters precede the run here, so the run is exactly the
	// embedded identifier.
	got, err := Normalize([]byte("junk!!123ABCDE7!!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "123ABCDE7" {
		t.Errorf("expected 123ABCDE7, got %q", got)
	}
}

func TestNormalize_NoHexRunIsMalformed(t *testing.T) {
	_, err := Normalize([]byte("no hex here!"))
	if !errors.Is(err, ErrMalformedBody) {
		t.Errorf("expected ErrMalformedBody, got %v", err)
	}
}

func TestNormalize_EmptyBodyIsMalformed(t *testing.T) {
	_, err := Normalize(nil)
	if !errors.Is(err, ErrMalformedBody) {
		t.Errorf("expected ErrMalformedBody, got %v", err)
	}
}

func TestNormalize_MissingUID(t *testing.T) {
	for _, body := range []string{`{}`, `{"uid":""}`, `{"uid":null}`, `{"badge":"AB12CD"}`} {
		_, err := Normalize([]byte(body))
		if !errors.Is(err, ErrMissingUID) {
			t.Errorf("body %s: expected ErrMissingUID, got %v", body, err)
		}
	}
}

func TestNormalize_TooShortIsInvalid(t *testing.T) {
	_, err := Normalize([]byte(`{"uid":"AB12"}`))
	if !errors.Is(err, ErrInvalidUID) {
		t.Errorf("expected ErrInvalidUID, got %v", err)
	}
}

func TestNormalize_NonHexOnlyIsInvalid(t *testing.T) {
	// Canonicalization strips everything, leaving too few characters.
	_, err := Normalize([]byte(`{"uid":"zz-yy-xx"}`))
	if !errors.Is(err, ErrInvalidUID) {
		t.Errorf("expected ErrInvalidUID, got %v", err)
	}
}

func TestNormalize_NumericUID(t *testing.T) {
	got, err := Normalize([]byte(`{"uid":123456}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "123456" {
		t.Errorf("expected 123456, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := [][]byte{
		[]byte(`{"uid":"ab12cd"}`),
		[]byte("garbage123ABCDE7more"),
		[]byte(`{"uid":"DE AD BE EF 00"}`),
	}
	for _, raw := range inputs {
		once, err := Normalize(raw)
		if err != nil {
			t.Fatalf("first pass %s: %v", raw, err)
		}
		twice, err := Normalize([]byte(once))
		if err != nil {
			t.Fatalf("second pass %s: %v", once, err)
		}
		if once != twice {
			t.Errorf("normalization not idempotent: %q != %q", once, twice)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	cases := map[string]string{
		"ab12cd":     "AB12CD",
		"  AB12CD  ": "AB12CD",
		"ab:12:cd":   "AB12CD",
		"already":    "AEAD", // only hex characters survive
		"":           "",
	}
	for in, want := range cases {
		if got := Canonicalize(in); got != want {
			t.Errorf("Canonicalize(%q) = %q, want %q", in, got, want)
		}
	}
}
