package herr

import (
	"errors"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := New(ErrInstrumentSlotsFull)
	if !Is(err, ErrInstrumentSlotsFull) {
		t.Errorf("Is(err, ErrInstrumentSlotsFull) = false, want true")
	}
	if Is(err, ErrBranchOutOfRange) {
		t.Errorf("Is(err, ErrBranchOutOfRange) = true, want false")
	}
}

func TestIsRejectsNonHookcoreError(t *testing.T) {
	if Is(errors.New("boom"), ErrInvalidAddress) {
		t.Errorf("Is(plain error, ...) = true, want false")
	}
}

func TestWithSizeMismatchPayload(t *testing.T) {
	err := WithSizeMismatch(4, 6)
	if err.Kind != ErrAsmSizeMismatch {
		t.Fatalf("Kind = %v, want ErrAsmSizeMismatch", err.Kind)
	}
	if err.Expected != 4 || err.Actual != 6 {
		t.Errorf("Expected=%d Actual=%d, want 4/6", err.Expected, err.Actual)
	}
	want := "assembled size mismatch (expected=4, actual=6)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWithSignalPayload(t *testing.T) {
	err := WithSignal(ErrSigActionFailed, 5, 22)
	if err.Signum != 5 || err.Errno != 22 {
		t.Errorf("Signum=%d Errno=%d, want 5/22", err.Signum, err.Errno)
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 9999
	if got := k.String(); got != "unknown error" {
		t.Errorf("String() on an unenumerated kind = %q, want %q", got, "unknown error")
	}
}
