// Package codec provides composable binary structure coders.
//
// A coder pairs an encode and a decode operation over a caller-owned byte
// buffer for one logical type. Coders compose into schemas for binary
// protocol and file-format work (packet headers, TLV containers,
// bit-packed flags, length-prefixed records) without a schema compiler or
// code generation step.
//
// # Coders
//
//	Numeric      U8..U64, I8..I64, F32, F64, Bool (per-field byte order)
//	Bytes        Bytes, BytesPrefixed, BytesRemaining
//	Strings      String, StringPadded, StringPrefixed, StringZero
//	Arrays       Array, ArrayPrefixed, ArrayWhile
//	Struct       ordered fields over getter/setter adapters
//	BitStruct    sub-byte MSB-first packed fields
//	Refine       logical view over a physical layout
//	RefineSwitch runtime-selected family of refinements
//
// # Contexts and references
//
// Every top-level call threads one Context through the traversal. Each
// coder records its value into the Context immediately after its work, on
// both directions, so a later coder can reuse it:
//
//	length := codec.U16(binary.BigEndian)
//	payload := codec.Bytes(codec.LenOf(length))
//
//	type packet struct {
//	    Length  uint16
//	    Payload []byte
//	}
//	packetCoder := codec.Struct(
//	    codec.F("length", length, ...),
//	    codec.F("payload", payload, ...),
//	)
//
// Traversal is strictly sequential, so a reference observes only coders
// that appear before it in declaration order. There is no forward-reference
// support: place length and count fields before their dependents.
//
// Computed references derive one value from several:
//
//	total := codec.Computed2(codec.Ref(w), codec.Ref(h),
//	    func(w, h uint16) int { return int(w) * int(h) })
//	pixels := codec.Bytes(codec.RefLen(codec.Computed1(total, ...)))
//
// # Bit-packed structs
//
// BitStruct packs unsigned sub-byte fields MSB-first:
//
//	flags := codec.MustBitStruct(
//	    codec.BitField{Name: "enabled", Width: 1},
//	    codec.BitField{Name: "priority", Width: 3},
//	    codec.BitField{Name: "category", Width: 4},
//	)
//	// {enabled: 1, priority: 5, category: 2} encodes to 0xD2
//
// Field widths are 1-32 bits and the total must be a multiple of 8, checked
// at construction.
//
// # Discriminated refinement
//
// RefineSwitch decodes one physical layout into a runtime-selected tagged
// union of logical types. The selector picks a variant key from the base
// value on decode and from the refined value on encode; the two selections
// must agree for corresponding pairs, which the engine cannot verify.
//
// # Top-level API
//
//	out, err := codec.Encode(coder, value)          // growth applies
//	n, err := codec.EncodeInto(coder, value, dst, nil)
//	v, err := codec.Decode(coder, data)
//
// Encode without a destination retries against progressively larger
// buffers (default 4096 bytes initial, doubling, ~400 MiB ceiling).
//
// # Errors
//
// All failures are fail-fast structured errors from the errors package,
// categorized by phase and kind:
//
//	[encode] length_mismatch at header.payload: fixed length 4 does not match payload length 7
//	[decode] buffer_too_small at items.[2]: need 8 byte(s), have 3
//
// Partial writes are not rolled back; only the growth helper retries, and
// only on the buffer-too-small kind.
//
// # Thread safety
//
// Coder trees are immutable after construction and safe to share. A
// Context is not: one Context per traversal, created fresh unless state is
// shared intentionally across a related multi-pass protocol.
package codec
