package main

import (
	"strings"
	"testing"
)

func TestMessageSchema_ShortBodyFrames(t *testing.T) {
	s := messageSchema()
	// Opcode + zero-length body is a well-formed frame; ping and pong
	// require a one-byte body and must fail cleanly, not crash.
	for _, data := range [][]byte{{0x01, 0x00}, {0x02, 0x00}} {
		if _, err := s.decode(data); err == nil {
			t.Errorf("decode(% X): expected error for empty body", data)
		}
	}
}

func TestMessageSchema_DataAcceptsEmptyBody(t *testing.T) {
	s := messageSchema()
	out, err := s.decode([]byte{0x03, 0x00})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out, "kind: data") {
		t.Errorf("expected data frame, got:\n%s", out)
	}
}

func TestSchemas_SamplesDecode(t *testing.T) {
	for _, s := range buildSchemas() {
		data, err := s.sample()
		if err != nil {
			t.Fatalf("%s: sample: %v", s.name, err)
		}
		if _, err := s.decode(data); err != nil {
			t.Errorf("%s: decode(sample): %v", s.name, err)
		}
	}
}
