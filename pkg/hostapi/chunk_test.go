package hostapi

import (
	"testing"

	"github.com/tillitis/tkey-device-oath/pkg/dispatcher"
	"github.com/tillitis/tkey-device-oath/pkg/frame"
)

func TestSingleFrameRequest_PicksSmallestLengthCode(t *testing.T) {
	tests := []struct {
		bodyLen  int
		wantCode frame.LengthCode
	}{
		{0, frame.LengthCode1},
		{3, frame.LengthCode4},
		{20, frame.LengthCode32},
		{100, frame.LengthCode128},
	}
	for _, tt := range tests {
		body := make([]byte, tt.bodyLen)
		f, err := SingleFrameRequest(1, frame.DstSW, dispatcher.OpGetNameVersion, body)
		if err != nil {
			t.Fatalf("bodyLen=%d: unexpected error: %v", tt.bodyLen, err)
		}
		if f.Header.LengthCode != tt.wantCode {
			t.Errorf("bodyLen=%d: LengthCode = %v, want %v", tt.bodyLen, f.Header.LengthCode, tt.wantCode)
		}
		if f.Payload[0] != dispatcher.OpGetNameVersion {
			t.Errorf("bodyLen=%d: payload[0] = %#x, want opcode %#x", tt.bodyLen, f.Payload[0], dispatcher.OpGetNameVersion)
		}
	}
}

func TestSingleFrameRequest_TooLarge(t *testing.T) {
	body := make([]byte, dispatcher.PayloadMaxLen+1)
	if _, err := SingleFrameRequest(1, frame.DstSW, dispatcher.OpPut, body); err != frame.ErrInvalidLengthCode {
		t.Errorf("error = %v, want ErrInvalidLengthCode", err)
	}
}

func TestChunkRequest_SplitsIntoPayloadMaxLenPieces(t *testing.T) {
	body := make([]byte, dispatcher.PayloadMaxLen*2+10)
	for i := range body {
		body[i] = byte(i)
	}

	frames, err := ChunkRequest(1, frame.DstSW, dispatcher.OpPut, body)
	if err != nil {
		t.Fatalf("ChunkRequest: unexpected error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("ChunkRequest produced %d frames, want 3", len(frames))
	}

	var reassembled []byte
	for _, f := range frames {
		if f.Payload[0] != dispatcher.OpPut {
			t.Errorf("frame payload[0] = %#x, want opcode %#x", f.Payload[0], dispatcher.OpPut)
		}
		reassembled = append(reassembled, f.Payload[1:]...)
	}
	if len(reassembled) < len(body) {
		t.Fatalf("reassembled %d bytes, want at least %d", len(reassembled), len(body))
	}
	for i := range body {
		if reassembled[i] != body[i] {
			t.Errorf("byte %d mismatch: got %#x, want %#x", i, reassembled[i], body[i])
		}
	}
}

func TestChunkRequest_EmptyBodySendsOneFrame(t *testing.T) {
	frames, err := ChunkRequest(1, frame.DstSW, dispatcher.OpLoadTOC, nil)
	if err != nil {
		t.Fatalf("ChunkRequest: unexpected error: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("ChunkRequest(nil) produced %d frames, want 1", len(frames))
	}
}
