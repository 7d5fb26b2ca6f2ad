package frame

import (
	"bytes"
	"testing"
)

func TestLengthCode_PayloadLen(t *testing.T) {
	tests := []struct {
		lc      LengthCode
		want    int
		wantErr bool
	}{
		{LengthCode1, 1, false},
		{LengthCode4, 4, false},
		{LengthCode32, 32, false},
		{LengthCode128, 128, false},
		{LengthCode(4), 0, true},
		{LengthCode(7), 0, true},
	}
	for _, tt := range tests {
		got, err := tt.lc.PayloadLen()
		if tt.wantErr {
			if err != ErrInvalidLengthCode {
				t.Errorf("LengthCode(%d).PayloadLen() error = %v, want ErrInvalidLengthCode", tt.lc, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("LengthCode(%d).PayloadLen() unexpected error: %v", tt.lc, err)
		}
		if got != tt.want {
			t.Errorf("LengthCode(%d).PayloadLen() = %d, want %d", tt.lc, got, tt.want)
		}
	}
}

func TestLengthCodeFor(t *testing.T) {
	tests := []struct {
		n       int
		want    LengthCode
		wantErr bool
	}{
		{0, LengthCode1, false},
		{1, LengthCode1, false},
		{2, LengthCode4, false},
		{4, LengthCode4, false},
		{5, LengthCode32, false},
		{32, LengthCode32, false},
		{33, LengthCode128, false},
		{128, LengthCode128, false},
		{129, 0, true},
	}
	for _, tt := range tests {
		got, err := LengthCodeFor(tt.n)
		if tt.wantErr {
			if err != ErrInvalidLengthCode {
				t.Errorf("LengthCodeFor(%d) error = %v, want ErrInvalidLengthCode", tt.n, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("LengthCodeFor(%d) unexpected error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("LengthCodeFor(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestHeader_EncodeDecodeRoundTrip(t *testing.T) {
	tests := []Header{
		{ID: 0, Endpoint: DstSW, Status: StatusOK, LengthCode: LengthCode1},
		{ID: 3, Endpoint: DstFW, Status: StatusNOK, LengthCode: LengthCode128},
		{ID: 1, Endpoint: DstSW, Status: StatusOK, LengthCode: LengthCode32},
	}
	for _, h := range tests {
		b := h.Encode()
		got := Decode(b)
		if got != h {
			t.Errorf("Decode(Encode(%+v)) = %+v, want %+v", h, got, h)
		}
	}
}

func TestHeader_EncodeBitLayout(t *testing.T) {
	h := Header{ID: 2, Endpoint: DstSW, Status: StatusNOK, LengthCode: LengthCode4}
	got := h.Encode()
	// id=10, endpoint=11, status=1, length=001 -> 1011 1001 = 0xb9
	want := byte(0b10_11_1_001)
	if got != want {
		t.Errorf("Encode() = %08b, want %08b", got, want)
	}
}

func TestDecodeFrame_RoundTrip(t *testing.T) {
	f := Frame{
		Header:  Header{ID: 1, Endpoint: DstSW, Status: StatusOK, LengthCode: LengthCode4},
		Payload: []byte{0x01, 0x02, 0x03, 0x04},
	}
	buf := f.Encode()
	if len(buf) != 5 {
		t.Fatalf("Encode() len = %d, want 5", len(buf))
	}

	got, n, err := DecodeFrame(buf)
	if err != nil {
		t.Fatalf("DecodeFrame: unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("DecodeFrame consumed %d bytes, want 5", n)
	}
	if got.Header != f.Header || !bytes.Equal(got.Payload, f.Payload) {
		t.Errorf("DecodeFrame round trip mismatch: got %+v, want %+v", got, f)
	}
}

func TestDecodeFrame_TrailingBytesIgnored(t *testing.T) {
	f := Frame{
		Header:  Header{ID: 0, Endpoint: DstSW, Status: StatusOK, LengthCode: LengthCode1},
		Payload: []byte{0x42},
	}
	buf := append(f.Encode(), 0xff, 0xff)

	got, n, err := DecodeFrame(buf)
	if err != nil {
		t.Fatalf("DecodeFrame: unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("DecodeFrame consumed %d bytes, want 2", n)
	}
	if !bytes.Equal(got.Payload, []byte{0x42}) {
		t.Errorf("Payload = %v, want [0x42]", got.Payload)
	}
}

func TestDecodeFrame_Errors(t *testing.T) {
	if _, _, err := DecodeFrame(nil); err != ErrHeaderTooShort {
		t.Errorf("DecodeFrame(nil) error = %v, want ErrHeaderTooShort", err)
	}

	h := Header{LengthCode: LengthCode128}
	buf := []byte{h.Encode()}
	buf = append(buf, make([]byte, 10)...)
	if _, _, err := DecodeFrame(buf); err != ErrPayloadTooShort {
		t.Errorf("DecodeFrame(short payload) error = %v, want ErrPayloadTooShort", err)
	}
}
