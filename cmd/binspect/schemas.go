package main

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/wirebyte/bincodec/codec"
)

// A schema is a built-in demo format the inspector can decode. Each one is
// a pure client of the codec package: it owns a coder tree built once at
// startup and renders decoded values as text.
type schema struct {
	name        string
	description string
	decode      func(data []byte) (string, error)
	sample      func() ([]byte, error)
}

func buildSchemas() []schema {
	return []schema{
		packetSchema(),
		messageSchema(),
		recordSchema(),
	}
}

func findSchema(schemas []schema, name string) (schema, bool) {
	for _, s := range schemas {
		if s.name == name {
			return s, true
		}
	}
	return schema{}, false
}

// packetSchema is a bit-packed header followed by a length-driven payload:
// the payload's size comes from a reference to the length field.
func packetSchema() schema {
	flags := codec.MustBitStruct(
		codec.BitField{Name: "version", Width: 4},
		codec.BitField{Name: "urgent", Width: 1},
		codec.BitField{Name: "priority", Width: 3},
	)
	length := codec.U16(binary.BigEndian)
	payload := codec.Bytes(codec.LenOf(length))

	type packet struct {
		Flags   codec.BitValues
		Length  uint16
		Payload []byte
	}
	coder := codec.Struct(
		codec.F("flags", flags,
			func(p *packet) codec.BitValues { return p.Flags },
			func(p *packet, v codec.BitValues) { p.Flags = v }),
		codec.F("length", length,
			func(p *packet) uint16 { return p.Length },
			func(p *packet, v uint16) { p.Length = v }),
		codec.F("payload", payload,
			func(p *packet) []byte { return p.Payload },
			func(p *packet, v []byte) { p.Payload = v }),
	)

	return schema{
		name:        "packet",
		description: "bit-packed flags, u16 length, length-driven payload",
		decode: func(data []byte) (string, error) {
			p, err := codec.Decode(coder, data)
			if err != nil {
				return "", err
			}
			var b strings.Builder
			fmt.Fprintf(&b, "version:  %d\n", p.Flags["version"])
			fmt.Fprintf(&b, "urgent:   %d\n", p.Flags["urgent"])
			fmt.Fprintf(&b, "priority: %d\n", p.Flags["priority"])
			fmt.Fprintf(&b, "length:   %d\n", p.Length)
			fmt.Fprintf(&b, "payload:  % X\n", p.Payload)
			return b.String(), nil
		},
		sample: func() ([]byte, error) {
			return codec.Encode(coder, packet{
				Flags:   codec.BitValues{"version": 2, "urgent": 1, "priority": 5},
				Length:  4,
				Payload: []byte{0xCA, 0xFE, 0xBA, 0xBE},
			})
		},
	}
}

// messageSchema is a discriminated refinement: one physical frame layout
// (opcode + length-prefixed body) decoded into a ping/pong/data family.
func messageSchema() schema {
	type frame struct {
		Op   uint8
		Body []byte
	}
	frameCoder := codec.Struct(
		codec.F("op", codec.U8(),
			func(f *frame) uint8 { return f.Op },
			func(f *frame, v uint8) { f.Op = v }),
		codec.F("body", codec.BytesPrefixed(codec.U8()),
			func(f *frame) []byte { return f.Body },
			func(f *frame, v []byte) { f.Body = v }),
	)

	type message struct {
		Kind string
		Seq  uint8
		Data []byte
	}
	variants := map[string]codec.Variant[frame, message]{
		"ping": {
			Refine: func(f frame, _ *codec.Context) (message, error) {
				if len(f.Body) != 1 {
					return message{}, fmt.Errorf("ping frame body must be 1 byte, got %d", len(f.Body))
				}
				return message{Kind: "ping", Seq: f.Body[0]}, nil
			},
			Unrefine: func(m message, _ *codec.Context) (frame, error) {
				return frame{Op: 1, Body: []byte{m.Seq}}, nil
			},
		},
		"pong": {
			Refine: func(f frame, _ *codec.Context) (message, error) {
				if len(f.Body) != 1 {
					return message{}, fmt.Errorf("pong frame body must be 1 byte, got %d", len(f.Body))
				}
				return message{Kind: "pong", Seq: f.Body[0]}, nil
			},
			Unrefine: func(m message, _ *codec.Context) (frame, error) {
				return frame{Op: 2, Body: []byte{m.Seq}}, nil
			},
		},
		"data": {
			Refine: func(f frame, _ *codec.Context) (message, error) {
				return message{Kind: "data", Data: f.Body}, nil
			},
			Unrefine: func(m message, _ *codec.Context) (frame, error) {
				return frame{Op: 3, Body: m.Data}, nil
			},
		},
	}
	sel := codec.SelectorFuncs[frame, message]{
		Decode: func(f frame, _ *codec.Context) (string, bool) {
			switch f.Op {
			case 1:
				return "ping", true
			case 2:
				return "pong", true
			case 3:
				return "data", true
			}
			return "", false
		},
		Encode: func(m message, _ *codec.Context) (string, bool) {
			if m.Kind == "" {
				return "", false
			}
			return m.Kind, true
		},
	}
	coder := codec.RefineSwitch(frameCoder, variants, sel)

	return schema{
		name:        "message",
		description: "opcode-discriminated ping/pong/data frames",
		decode: func(data []byte) (string, error) {
			m, err := codec.Decode(coder, data)
			if err != nil {
				return "", err
			}
			var b strings.Builder
			fmt.Fprintf(&b, "kind: %s\n", m.Kind)
			if m.Kind == "data" {
				fmt.Fprintf(&b, "data: % X\n", m.Data)
			} else {
				fmt.Fprintf(&b, "seq:  %d\n", m.Seq)
			}
			return b.String(), nil
		},
		sample: func() ([]byte, error) {
			return codec.Encode(coder, message{Kind: "ping", Seq: 7})
		},
	}
}

// recordSchema shows the three string termination strategies side by side.
func recordSchema() schema {
	type record struct {
		Name string
		Tag  string
		Code string
	}
	coder := codec.Struct(
		codec.F("name", codec.StringPrefixed(codec.U8()),
			func(r *record) string { return r.Name },
			func(r *record, v string) { r.Name = v }),
		codec.F("tag", codec.StringZero(),
			func(r *record) string { return r.Tag },
			func(r *record, v string) { r.Tag = v }),
		codec.F("code", codec.StringPadded(codec.FixedLen(4)),
			func(r *record) string { return r.Code },
			func(r *record, v string) { r.Code = v }),
	)

	return schema{
		name:        "record",
		description: "length-prefixed, zero-terminated, and zero-padded strings",
		decode: func(data []byte) (string, error) {
			r, err := codec.Decode(coder, data)
			if err != nil {
				return "", err
			}
			var b strings.Builder
			fmt.Fprintf(&b, "name: %q\n", r.Name)
			fmt.Fprintf(&b, "tag:  %q\n", r.Tag)
			fmt.Fprintf(&b, "code: %q\n", r.Code)
			return b.String(), nil
		},
		sample: func() ([]byte, error) {
			return codec.Encode(coder, record{Name: "sensor-1", Tag: "lab", Code: "A7"})
		},
	}
}

// hexDump renders data in a 16-byte-per-row dump with an ASCII gutter.
func hexDump(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]
		fmt.Fprintf(&b, "%08x  ", off)
		for i := 0; i < 16; i++ {
			if i < len(row) {
				fmt.Fprintf(&b, "%02x ", row[i])
			} else {
				b.WriteString("   ")
			}
			if i == 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(" |")
		for _, c := range row {
			if c >= 0x20 && c < 0x7F {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}
