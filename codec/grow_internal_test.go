package codec

import (
	"testing"

	"github.com/wirebyte/bincodec/errors"
)

func TestGrowAndRetry_GrowsUntilFit(t *testing.T) {
	opts := GrowthOptions{InitialSize: 1, MaxByteLength: 1024, GrowthFactor: 2}

	var attempts []int
	out, err := growAndRetry(opts, func(dst []byte) (int, error) {
		attempts = append(attempts, len(dst))
		if len(dst) < 10 {
			return 0, errors.BufferTooSmall(errors.PhaseEncode, 10, len(dst))
		}
		copy(dst, "0123456789")
		return 10, nil
	})
	if err != nil {
		t.Fatalf("growAndRetry: %v", err)
	}
	if string(out) != "0123456789" {
		t.Errorf("unexpected output %q", out)
	}
	// 1, 2, 4, 8, 16
	if len(attempts) != 5 || attempts[len(attempts)-1] != 16 {
		t.Errorf("unexpected attempt sizes %v", attempts)
	}
}

func TestGrowAndRetry_FractionalFactorTerminates(t *testing.T) {
	// A growth factor arbitrarily close to 1 must still make progress via
	// the +1 minimum step and terminate at the ceiling.
	opts := GrowthOptions{InitialSize: 1, MaxByteLength: 64, GrowthFactor: 1.0000001}

	_, err := growAndRetry(opts, func(dst []byte) (int, error) {
		return 0, errors.BufferTooSmall(errors.PhaseEncode, len(dst)+1, len(dst))
	})
	if !errors.IsKind(err, errors.KindGrowthExhausted) {
		t.Fatalf("expected growth_exhausted, got %v", err)
	}
}

func TestGrowAndRetry_SucceedsExactlyAtCeiling(t *testing.T) {
	opts := GrowthOptions{InitialSize: 1, MaxByteLength: 8, GrowthFactor: 2}

	out, err := growAndRetry(opts, func(dst []byte) (int, error) {
		if len(dst) < 8 {
			return 0, errors.BufferTooSmall(errors.PhaseEncode, 8, len(dst))
		}
		return 8, nil
	})
	if err != nil {
		t.Fatalf("growAndRetry: %v", err)
	}
	if len(out) != 8 {
		t.Errorf("expected 8 bytes, got %d", len(out))
	}
}

func TestGrowAndRetry_OtherErrorsPropagate(t *testing.T) {
	opts := GrowthOptions{InitialSize: 4, MaxByteLength: 64, GrowthFactor: 2}

	var attempts int
	_, err := growAndRetry(opts, func(dst []byte) (int, error) {
		attempts++
		return 0, errors.LengthMismatch(errors.PhaseEncode, 3, 5)
	})
	if !errors.IsKind(err, errors.KindLengthMismatch) {
		t.Fatalf("expected length_mismatch to propagate, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("non-retryable failure must not retry, got %d attempts", attempts)
	}
}

func TestGrowthOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		opts GrowthOptions
		ok   bool
	}{
		{"defaults", GrowthOptions{}.withDefaults(), true},
		{"negative initial", GrowthOptions{InitialSize: -1, MaxByteLength: 10, GrowthFactor: 2}, false},
		{"initial beyond max", GrowthOptions{InitialSize: 20, MaxByteLength: 10, GrowthFactor: 2}, false},
		{"factor of one", GrowthOptions{InitialSize: 1, MaxByteLength: 10, GrowthFactor: 1}, false},
		{"factor below one", GrowthOptions{InitialSize: 1, MaxByteLength: 10, GrowthFactor: 0.5}, false},
		{"barely above one", GrowthOptions{InitialSize: 1, MaxByteLength: 10, GrowthFactor: 1.0001}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok && !errors.IsKind(err, errors.KindInvalidConfig) {
				t.Errorf("expected invalid_config, got %v", err)
			}
		})
	}
}

func TestContext_RecordAndLookup(t *testing.T) {
	ctx := NewEncodeContext()
	tgt := newTarget()

	if _, ok := ctx.lookup(tgt.Handle()); ok {
		t.Error("lookup before record should miss")
	}
	tgt.record(ctx, 42)
	v, ok := ctx.lookup(tgt.Handle())
	if !ok || v.(int) != 42 {
		t.Errorf("lookup after record: %v, %v", v, ok)
	}

	// Re-recording overwrites, keeping only the last value.
	tgt.record(ctx, 43)
	v, _ = ctx.lookup(tgt.Handle())
	if v.(int) != 43 {
		t.Errorf("expected last value, got %v", v)
	}
}

func TestHandles_AreUnique(t *testing.T) {
	a, b := newTarget(), newTarget()
	if a.Handle() == b.Handle() {
		t.Error("two coders must never share a handle")
	}
}
