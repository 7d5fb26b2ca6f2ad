package session

import (
	"bytes"
	"testing"

	"github.com/tillitis/tkey-device-oath/pkg/record"
)

func TestState_Reset(t *testing.T) {
	var s State
	s.TOCBuf[0] = 0xff
	s.RecordBuf[0] = 0xff
	s.RecordBufEncrypted = true
	s.Cursor = 42
	s.ForcedNextCommand = CommandCalculate

	s.Reset()

	if s.TOCBuf != ([record.SizeTOC]byte{}) {
		t.Error("Reset did not zero TOCBuf")
	}
	if s.RecordBuf != ([record.SizePutRecord]byte{}) {
		t.Error("Reset did not zero RecordBuf")
	}
	if s.RecordBufEncrypted {
		t.Error("Reset did not clear RecordBufEncrypted")
	}
	if s.Cursor != 0 {
		t.Errorf("Reset left Cursor = %d, want 0", s.Cursor)
	}
	if s.ForcedNextCommand != CommandLoadTOC {
		t.Errorf("Reset left ForcedNextCommand = %v, want CommandLoadTOC", s.ForcedNextCommand)
	}
}

func TestState_Allow(t *testing.T) {
	tests := []struct {
		name    string
		forced  Command
		cmd     Command
		wantOK  bool
	}{
		{"any constraint allows anything", CommandAny, CommandCalculate, true},
		{"any constraint allows unknown", CommandAny, CommandUnknown, true},
		{"forced command matches itself", CommandLoadTOC, CommandLoadTOC, true},
		{"forced command rejects others", CommandLoadTOC, CommandGetList, false},
		{"get-name-version always allowed under a forced command", CommandLoadTOC, CommandGetNameVersion, true},
		{"forced command rejects unknown", CommandLoadTOC, CommandUnknown, false},
		{"forced put-get-record rejects calculate", CommandPutGetRecord, CommandCalculate, false},
	}
	for _, tt := range tests {
		s := State{ForcedNextCommand: tt.forced}
		if got := s.Allow(tt.cmd); got != tt.wantOK {
			t.Errorf("%s: Allow(%v) with forced=%v = %v, want %v", tt.name, tt.cmd, tt.forced, got, tt.wantOK)
		}
	}
}

func TestState_EncodeDecodeTOCRoundTrip(t *testing.T) {
	var s State
	var toc record.TOC
	toc.Header.DescriptorCount = 2
	toc.Descriptors[0] = record.Descriptor{NameLen: 4}
	copy(toc.Descriptors[0].Name[:], "totp")
	toc.Descriptors[1] = record.Descriptor{NameLen: 4}
	copy(toc.Descriptors[1].Name[:], "hotp")

	s.EncodeTOC(toc)

	got, err := s.DecodeTOC()
	if err != nil {
		t.Fatalf("DecodeTOC: unexpected error: %v", err)
	}
	if got.Header.DescriptorCount != 2 {
		t.Fatalf("DescriptorCount = %d, want 2", got.Header.DescriptorCount)
	}
	if !bytes.Equal(got.Descriptors[0].RawName(), []byte("totp")) {
		t.Errorf("descriptor[0] = %q, want %q", got.Descriptors[0].RawName(), "totp")
	}
	if !bytes.Equal(got.Descriptors[1].RawName(), []byte("hotp")) {
		t.Errorf("descriptor[1] = %q, want %q", got.Descriptors[1].RawName(), "hotp")
	}
}
