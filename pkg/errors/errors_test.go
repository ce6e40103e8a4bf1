package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrCodeInvalidModule, "module %.0fcm outside recognized range", 40.0)
	if got, want := plain.Error(), "INVALID_MODULE: module 40cm outside recognized range"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := stderrors.New("open failed")
	wrapped := Wrap(ErrCodeFileNotFound, cause, "reading %s", "rooms.csv")
	if got := wrapped.Error(); !strings.Contains(got, "FILE_NOT_FOUND") || !strings.Contains(got, "open failed") {
		t.Errorf("wrapped Error() = %q, want code and cause present", got)
	}
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidTolerance, "bad tolerance")

	if !Is(inner, ErrCodeInvalidTolerance) {
		t.Error("Is() false for direct error")
	}
	if Is(inner, ErrCodeInvalidModule) {
		t.Error("Is() true for wrong code")
	}

	// fmt wrapping keeps the chain intact.
	outer := fmt.Errorf("loading config: %w", inner)
	if !Is(outer, ErrCodeInvalidTolerance) {
		t.Error("Is() false through fmt.Errorf wrapping")
	}

	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() true for non-structured error")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "gone")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeInternal, cause, "context")
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is does not reach the cause")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidHeight, "height must be positive")
	if got := UserMessage(err); got != "height must be positive" {
		t.Errorf("UserMessage = %q, want message without code prefix", got)
	}
	if got := UserMessage(stderrors.New("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestWarningString(t *testing.T) {
	tests := []struct {
		w    Warning
		want string
	}{
		{
			Warning{Code: ErrCodeNoAcceptableProportion, Room: "Office", Message: "used generic proportions"},
			"NO_ACCEPTABLE_PROPORTION: Office: used generic proportions",
		},
		{
			Warning{Code: ErrCodeInvalidInputRow, Row: 3, Message: "area must be greater than 0"},
			"INVALID_INPUT_ROW: row 3: area must be greater than 0",
		},
		{
			Warning{Code: ErrCodeInvalidInput, Message: "no rooms"},
			"INVALID_INPUT: no rooms",
		},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
