// Package api tests the structured error type.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"errors"
	"strings"
	"testing"
)

func TestNewError_Message(t *testing.T) {
	e := NewError(ErrCodeInternal, "something broke")
	if e.Error() != "something broke" {
		t.Errorf("unexpected message: %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Error("NewError should not wrap a cause")
	}
}

func TestWithContext_AppearsInMessage(t *testing.T) {
	e := NewError(ErrCodeInternal, "oops").WithContext("dim", 0)
	if !strings.Contains(e.Error(), "dim") {
		t.Errorf("context missing from message: %q", e.Error())
	}
	if e.Context["dim"] != 0 {
		t.Errorf("context value lost: %+v", e.Context)
	}
}

func TestWrapError_MatchesSentinel(t *testing.T) {
	e := WrapError(ErrCodeBufferFull, ErrBufferFull).WithContext("ring", "demo")
	if !errors.Is(e, ErrBufferFull) {
		t.Error("wrapped error should match its sentinel via errors.Is")
	}
	if errors.Is(e, ErrBufferEmpty) {
		t.Error("wrapped error should not match a different sentinel")
	}
	var structured *Error
	if !errors.As(e, &structured) {
		t.Fatal("errors.As should recover the structured error")
	}
	if structured.Code != ErrCodeBufferFull {
		t.Errorf("expected code %v, got %v", ErrCodeBufferFull, structured.Code)
	}
}
