package hostapi

import (
	"github.com/tillitis/tkey-device-oath/pkg/dispatcher"
	"github.com/tillitis/tkey-device-oath/pkg/frame"
)

// ChunkRequest splits body into dispatcher.PayloadMaxLen-sized pieces,
// each framed as opcode-prefixed payload with the given frame id and
// endpoint, for the LOAD_TOC and PUT multi-frame transfers. The last
// chunk may be shorter; callers with a final chunk under the frame's
// length-code granularity still get a correctly sized frame since
// frame.LengthCodeFor rounds up.
func ChunkRequest(id uint8, endpoint frame.Endpoint, opcode byte, body []byte) ([]frame.Frame, error) {
	if len(body) == 0 {
		f, err := SingleFrameRequest(id, endpoint, opcode, nil)
		if err != nil {
			return nil, err
		}
		return []frame.Frame{f}, nil
	}

	var frames []frame.Frame
	for off := 0; off < len(body); off += dispatcher.PayloadMaxLen {
		end := off + dispatcher.PayloadMaxLen
		if end > len(body) {
			end = len(body)
		}
		f, err := SingleFrameRequest(id, endpoint, opcode, body[off:end])
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// SingleFrameRequest builds one request frame: opcode followed by
// body, padded to the smallest length code that holds it.
func SingleFrameRequest(id uint8, endpoint frame.Endpoint, opcode byte, body []byte) (frame.Frame, error) {
	payload := make([]byte, 1+len(body))
	payload[0] = opcode
	copy(payload[1:], body)

	lc, err := frame.LengthCodeFor(len(payload))
	if err != nil {
		return frame.Frame{}, err
	}
	n, _ := lc.PayloadLen()
	full := make([]byte, n)
	copy(full, payload)

	return frame.Frame{
		Header: frame.Header{
			ID:         id,
			Endpoint:   endpoint,
			Status:     frame.StatusOK,
			LengthCode: lc,
		},
		Payload: full,
	}, nil
}
