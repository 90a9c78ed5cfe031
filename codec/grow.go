package codec

import (
	"github.com/wirebyte/bincodec/errors"
)

// Growth defaults used when an Encode call supplies no destination buffer
// and no explicit options.
const (
	DefaultInitialSize   = 4096
	DefaultMaxByteLength = 400 << 20 // ~400 MiB
	DefaultGrowthFactor  = 2.0
)

// GrowthOptions configures the encode-side retry helper for outputs of
// unknown size. Zero fields take the package defaults.
type GrowthOptions struct {
	// InitialSize is the first buffer allocation.
	InitialSize int
	// MaxByteLength caps the buffer; exceeding it fails growth_exhausted.
	MaxByteLength int
	// GrowthFactor scales the buffer between attempts. Must be > 1; a +1
	// byte minimum step keeps factors arbitrarily close to 1 from stalling.
	GrowthFactor float64
}

func (o GrowthOptions) withDefaults() GrowthOptions {
	if o.InitialSize == 0 {
		o.InitialSize = DefaultInitialSize
	}
	if o.MaxByteLength == 0 {
		o.MaxByteLength = DefaultMaxByteLength
	}
	if o.GrowthFactor == 0 {
		o.GrowthFactor = DefaultGrowthFactor
	}
	return o
}

func (o GrowthOptions) validate() error {
	if o.InitialSize < 0 {
		return errors.InvalidConfig("InitialSize must be non-negative, got %d", o.InitialSize)
	}
	if o.MaxByteLength < o.InitialSize {
		return errors.InvalidConfig("MaxByteLength %d is smaller than InitialSize %d", o.MaxByteLength, o.InitialSize)
	}
	if o.GrowthFactor <= 1 {
		return errors.InvalidConfig("GrowthFactor must be greater than 1, got %v", o.GrowthFactor)
	}
	return nil
}

// growAndRetry runs try against progressively larger buffers until it
// succeeds, fails with something other than a buffer_too_small error, or
// the size ceiling is reached. Only the distinguished too-small failure
// triggers a retry; everything else propagates immediately.
func growAndRetry(opts GrowthOptions, try func(dst []byte) (int, error)) ([]byte, error) {
	size := opts.InitialSize
	for {
		buf := make([]byte, size)
		n, err := try(buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.IsKind(err, errors.KindBufferTooSmall) {
			return nil, err
		}
		if size >= opts.MaxByteLength {
			return nil, errors.GrowthExhausted(opts.MaxByteLength)
		}
		next := int(float64(size) * opts.GrowthFactor)
		if next <= size {
			next = size + 1
		}
		if next > opts.MaxByteLength {
			next = opts.MaxByteLength
		}
		debugf("encode buffer too small at %d byte(s), growing to %d", size, next)
		size = next
	}
}
