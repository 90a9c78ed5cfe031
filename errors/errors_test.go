package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindLengthMismatch,
				Path:   []string{"header", "payload"},
				Detail: "fixed length 4 does not match payload length 7",
			},
			contains: []string{"[encode]", "length_mismatch", "header.payload", "fixed length 4"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindBufferTooSmall,
			},
			contains: []string{"[decode]", "buffer_too_small"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseResolve,
				Kind:   KindRefNotFound,
				Detail: "coder #3 has not recorded a value",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[resolve]", "ref_not_found", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInvalidLength,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindLengthMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseEncode, Kind: KindLengthMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindLengthMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindBufferTooSmall}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindLengthMismatch}) {
		t.Error("errors.Is should match same phase and kind")
	}
}

func TestIsKind(t *testing.T) {
	err := BufferTooSmall(PhaseEncode, 16, 3)
	if !IsKind(err, KindBufferTooSmall) {
		t.Error("IsKind should match buffer_too_small")
	}
	if IsKind(err, KindLengthMismatch) {
		t.Error("IsKind should not match a different kind")
	}
	if IsKind(errors.New("plain"), KindBufferTooSmall) {
		t.Error("IsKind should not match a non-codec error")
	}

	// Matches through wrapping.
	wrapped := New(PhaseDecode, KindBufferTooSmall).
		Detail("outer").
		Cause(errors.New("inner")).
		Build()
	if !IsKind(wrapped, KindBufferTooSmall) {
		t.Error("IsKind should match through the error itself")
	}
}

func TestNonByteAligned_PaddingMessage(t *testing.T) {
	err := NonByteAligned(7)
	if !strings.Contains(err.Error(), "1 padding bit(s)") {
		t.Errorf("expected message naming 1 padding bit(s), got %q", err.Error())
	}

	err = NonByteAligned(13)
	if !strings.Contains(err.Error(), "3 padding bit(s)") {
		t.Errorf("expected message naming 3 padding bit(s), got %q", err.Error())
	}
}

func TestPrependPath(t *testing.T) {
	inner := BufferTooSmall(PhaseDecode, 8, 3)
	inner.Path = []string{"payload"}

	out := PrependPath(inner, "header")
	var ce *Error
	if !errors.As(out, &ce) {
		t.Fatal("PrependPath should return a codec error")
	}
	if got := strings.Join(ce.Path, "."); got != "header.payload" {
		t.Errorf("expected path header.payload, got %q", got)
	}
	if len(inner.Path) != 1 {
		t.Error("PrependPath must not mutate the original error")
	}

	plain := errors.New("plain")
	if PrependPath(plain, "x") != plain {
		t.Error("PrependPath should pass non-codec errors through")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseDecode, KindInvalidVariantKey).
		Path("message", "body").
		Detail("no variant registered under key %q", "pong").
		Value("pong").
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindInvalidVariantKey {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if !strings.Contains(err.Error(), `"pong"`) {
		t.Errorf("detail not formatted: %q", err.Error())
	}
	if err.Value != "pong" {
		t.Errorf("unexpected value: %v", err.Value)
	}
}
