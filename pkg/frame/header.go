package frame

// Endpoint identifies the destination of a frame.
type Endpoint uint8

const (
	// DstFW is the firmware-update endpoint; frames addressed here are
	// always rejected with a NOK reply by the device core.
	DstFW Endpoint = 2
	// DstSW is this application's endpoint.
	DstSW Endpoint = 3
)

// Status is the 1-bit header status flag.
type Status uint8

const (
	StatusOK  Status = 0
	StatusNOK Status = 1
)

// LengthCode is the 3-bit field selecting one of four fixed payload
// sizes.
type LengthCode uint8

const (
	LengthCode1 LengthCode = iota
	LengthCode4
	LengthCode32
	LengthCode128
)

// payloadSizes maps a LengthCode's ordinal to its payload size. Only
// the four lowest codes are defined; constructing a Header with any
// other value and calling PayloadLen returns ErrInvalidLengthCode.
var payloadSizes = [4]int{1, 4, 32, 128}

// PayloadLen returns the payload size the code encodes, or
// ErrInvalidLengthCode if lc is not one of the four defined codes.
func (lc LengthCode) PayloadLen() (int, error) {
	if int(lc) >= len(payloadSizes) {
		return 0, ErrInvalidLengthCode
	}
	return payloadSizes[lc], nil
}

// LengthCodeFor returns the smallest defined LengthCode whose payload
// size is >= n, or ErrInvalidLengthCode if n exceeds the largest
// defined size.
func LengthCodeFor(n int) (LengthCode, error) {
	for code, size := range payloadSizes {
		if n <= size {
			return LengthCode(code), nil
		}
	}
	return 0, ErrInvalidLengthCode
}

const (
	idShift       = 6
	idMask        = 0x03
	endpointShift = 4
	endpointMask  = 0x03
	statusShift   = 3
	statusMask    = 0x01
	lengthMask    = 0x07
)

// Header is the 1-byte frame header: id (2 bits), endpoint (2 bits),
// status (1 bit), length_code (3 bits).
type Header struct {
	ID         uint8
	Endpoint   Endpoint
	Status     Status
	LengthCode LengthCode
}

// Encode packs the header fields into a single byte.
func (h Header) Encode() byte {
	var b byte
	b |= (h.ID & idMask) << idShift
	b |= (uint8(h.Endpoint) & endpointMask) << endpointShift
	b |= (uint8(h.Status) & statusMask) << statusShift
	b |= uint8(h.LengthCode) & lengthMask
	return b
}

// Decode unpacks a header byte.
func Decode(b byte) Header {
	return Header{
		ID:         (b >> idShift) & idMask,
		Endpoint:   Endpoint((b >> endpointShift) & endpointMask),
		Status:     Status((b >> statusShift) & statusMask),
		LengthCode: LengthCode(b & lengthMask),
	}
}

// Frame is a decoded header paired with its payload, sized exactly to
// the header's length code.
type Frame struct {
	Header  Header
	Payload []byte
}

// DecodeFrame reads one header byte followed by its payload from buf.
// It returns the frame and the number of bytes consumed.
func DecodeFrame(buf []byte) (Frame, int, error) {
	if len(buf) < 1 {
		return Frame{}, 0, ErrHeaderTooShort
	}
	h := Decode(buf[0])
	n, err := h.LengthCode.PayloadLen()
	if err != nil {
		return Frame{}, 0, err
	}
	if len(buf)-1 < n {
		return Frame{}, 0, ErrPayloadTooShort
	}
	payload := make([]byte, n)
	copy(payload, buf[1:1+n])
	return Frame{Header: h, Payload: payload}, 1 + n, nil
}

// Encode serializes f back into its wire form: one header byte
// followed by exactly LengthCode.PayloadLen() payload bytes, which
// Payload must already match in length.
func (f Frame) Encode() []byte {
	out := make([]byte, 1+len(f.Payload))
	out[0] = f.Header.Encode()
	copy(out[1:], f.Payload)
	return out
}
