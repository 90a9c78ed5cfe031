// Package bincodec is a composable binary structure codec engine.
//
// This library builds encoders and decoders for binary protocols and file
// formats from small composable parts: fixed-width numerics, length-driven
// byte blocks and strings, arrays, structs, sub-byte bit fields, and
// discriminated refinements. Schemas are plain Go values; there is no schema
// compiler and no code generation step.
//
// # Architecture Overview
//
// The module is organized into a few packages with distinct responsibilities:
//
//	bincodec/            Root package (this documentation)
//	├── codec/           The engine: Coder contract, Context, all coders,
//	│                    references, buffer growth, top-level Encode/Decode
//	│   └── internal/bitio/  MSB-first bit cursor for bit-packed structs
//	├── errors/          Structured error types keyed by phase and kind
//	└── cmd/binspect/    CLI and interactive inspector for built-in schemas
//
// # Quick Start
//
// Describe a wire layout once, then encode and decode values through it:
//
//	length := codec.U16(binary.BigEndian)
//	packet := codec.Struct(
//	    codec.F("length", length,
//	        func(p *Packet) uint16 { return p.Length },
//	        func(p *Packet, v uint16) { p.Length = v }),
//	    codec.F("payload", codec.Bytes(codec.LenOf(length)),
//	        func(p *Packet) []byte { return p.Payload },
//	        func(p *Packet, v []byte) { p.Payload = v }),
//	)
//
//	data, err := codec.Encode(packet, Packet{Length: 2, Payload: []byte{1, 2}})
//	p, err := codec.Decode(packet, data)
//
// # References
//
// Coders record each value they produce into a per-call Context. Later
// coders in the same traversal can resolve those values through references,
// which is how a length field earlier in a layout sizes a payload later in
// it. References only look backward; resolving a coder that has not run yet
// in the current call is an error.
//
// # Thread Safety
//
// Coder trees are immutable after construction and safe for concurrent use.
// A Context is NOT thread-safe; create one per top-level call, or let
// codec.Encode and codec.Decode create one for you.
package bincodec
