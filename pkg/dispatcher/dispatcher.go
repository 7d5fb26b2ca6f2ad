package dispatcher

import (
	"context"
	"encoding/binary"

	"github.com/tillitis/tkey-device-oath/internal/hw"
	"github.com/tillitis/tkey-device-oath/pkg/crypto"
	"github.com/tillitis/tkey-device-oath/pkg/frame"
	"github.com/tillitis/tkey-device-oath/pkg/oath"
	"github.com/tillitis/tkey-device-oath/pkg/record"
	"github.com/tillitis/tkey-device-oath/pkg/session"
)

// AppVersion is returned verbatim by GET_NAMEVERSION.
const AppVersion uint32 = 0x00000001

// Dispatcher owns the single session.State for one power cycle and
// turns one inbound frame into exactly one reply frame. It is the
// sole consumer of the hardware interfaces for the duration of a
// handler call; per the single-threaded command loop, nothing else
// touches them concurrently.
type Dispatcher struct {
	state    *session.State
	envelope *crypto.Envelope
	trng     hw.TRNG
	led      hw.LED
	touch    hw.Touch
}

// New returns a Dispatcher wired to the given session state, AEAD
// envelope and hardware. state should already be Reset (or freshly
// zero-valued, which Allow/ForcedNextCommand treat the same as
// CommandAny — callers that want the boot-time LOAD_TOC gate must call
// Reset themselves before serving the first frame).
func New(state *session.State, envelope *crypto.Envelope, trng hw.TRNG, led hw.LED, touch hw.Touch) *Dispatcher {
	return &Dispatcher{state: state, envelope: envelope, trng: trng, led: led, touch: touch}
}

// HandleFrame processes one inbound frame. The second return value is
// false when the frame's endpoint is neither DstFW nor DstSW, in which
// case the original protocol silently drops it and no reply is sent.
func (d *Dispatcher) HandleFrame(req frame.Frame) (frame.Frame, bool) {
	if req.Header.Endpoint == frame.DstFW {
		d.led.Set(hw.Red)
		return d.nokReply(req), true
	}
	if req.Header.Endpoint != frame.DstSW {
		return frame.Frame{}, false
	}
	if len(req.Payload) == 0 {
		return d.nokReply(req), true
	}

	opcode := req.Payload[0]
	cmd, known := sessionCommand[opcode]
	if !known {
		cmd = session.CommandUnknown
	}
	if !d.state.Allow(cmd) {
		d.led.Set(hw.Red | hw.Blue)
		return d.nokReply(req), true
	}

	switch opcode {
	case OpGetNameVersion:
		return d.handleGetNameVersion(req), true
	case OpLoadTOC:
		return d.handleLoadTOC(req), true
	case OpGetList:
		return d.handleGetList(req), true
	case OpGetEncryptedTOC:
		return d.handleGetEncryptedTOC(req), true
	case OpPut:
		return d.handlePut(req), true
	case OpPutGetRecord:
		return d.handlePutGetRecord(req), true
	case OpCalculate:
		return d.handleCalculate(req), true
	default:
		return d.unknownReply(req), true
	}
}

// reply builds a successful frame: the echoed id/endpoint, status OK,
// the response opcode (request opcode + 1) as payload byte 0, followed
// by body, zero-padded to the command's fixed reply length.
func (d *Dispatcher) reply(req frame.Frame, opcode byte, body []byte) frame.Frame {
	total := replyLen[opcode]
	payload := make([]byte, total)
	payload[0] = opcode + 1
	copy(payload[1:], body)
	lc, _ := frame.LengthCodeFor(total)
	return frame.Frame{
		Header: frame.Header{
			ID:         req.Header.ID,
			Endpoint:   req.Header.Endpoint,
			Status:     frame.StatusOK,
			LengthCode: lc,
		},
		Payload: payload,
	}
}

// statusReply builds the common case of a reply whose body is a single
// status byte followed by zero padding.
func (d *Dispatcher) statusReply(req frame.Frame, opcode byte, status byte) frame.Frame {
	body := make([]byte, replyLen[opcode]-1)
	body[0] = status
	return d.reply(req, opcode, body)
}

// nokReply builds the minimal 2-byte protocol-violation reply.
func (d *Dispatcher) nokReply(req frame.Frame) frame.Frame {
	return frame.Frame{
		Header: frame.Header{
			ID:         req.Header.ID,
			Endpoint:   req.Header.Endpoint,
			Status:     frame.StatusNOK,
			LengthCode: frame.LengthCode1,
		},
		Payload: []byte{0},
	}
}

// unknownReply builds the 1-byte APP_RSP_UNKNOWN_CMD reply: no status
// byte, just the response code itself.
func (d *Dispatcher) unknownReply(req frame.Frame) frame.Frame {
	return frame.Frame{
		Header: frame.Header{
			ID:         req.Header.ID,
			Endpoint:   req.Header.Endpoint,
			Status:     frame.StatusOK,
			LengthCode: frame.LengthCode1,
		},
		Payload: []byte{OpUnknown},
	}
}

func (d *Dispatcher) waitTouch() {
	_ = d.touch.Wait(context.Background())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

func (d *Dispatcher) handleGetNameVersion(req frame.Frame) frame.Frame {
	body := make([]byte, replyLen[OpGetNameVersion]-1)
	if len(req.Payload) == 1 {
		copy(body[0:4], []byte("tk1 "))
		copy(body[4:8], []byte("oath"))
		binary.LittleEndian.PutUint32(body[8:12], AppVersion)
	}
	return d.reply(req, OpGetNameVersion, body)
}

func (d *Dispatcher) handleLoadTOC(req frame.Frame) frame.Frame {
	if len(req.Payload) < 1 {
		return d.statusReply(req, OpLoadTOC, StatusBad)
	}
	chunk := req.Payload[1:]

	skipFirst := d.state.Cursor == 0
	if skipFirst {
		if len(chunk) < record.SizeTOCHeader {
			d.led.Set(hw.Red)
			return d.statusReply(req, OpLoadTOC, StatusBad)
		}
		d.state.TOCBuf = [record.SizeTOC]byte{}
		copy(d.state.TOCBuf[0:record.SizeTOCHeader], chunk[0:record.SizeTOCHeader])
	}

	var header record.TOCHeader
	_ = header.UnmarshalBinary(d.state.TOCBuf[0:record.SizeTOCHeader])

	if header.DescriptorCount > record.DescriptorMaxCount {
		d.led.Set(hw.Red)
		d.state.Cursor = 0
		return d.statusReply(req, OpLoadTOC, StatusBad)
	}
	if header.DescriptorCount == 0 {
		d.led.Set(hw.Green)
		d.state.Cursor = 0
		d.state.ForcedNextCommand = session.CommandAny
		return d.statusReply(req, OpLoadTOC, StatusOK)
	}

	totalBytes := record.SizeTOCHeader + int(header.DescriptorCount)*record.SizeDescriptor
	n := min(totalBytes-int(d.state.Cursor), PayloadMaxLen)
	copy(d.state.TOCBuf[d.state.Cursor:int(d.state.Cursor)+n], chunk[0:n])
	d.state.Cursor += int32(n)

	if int(d.state.Cursor) == totalBytes {
		ad := []byte{header.ProtectedHeader.Settings}
		blob := d.state.TOCBuf[record.SizeTOCHeader:totalBytes]
		if err := d.envelope.Unlock(blob, header.Nonce, header.MAC, ad); err != nil {
			d.led.Set(hw.Red | hw.Green)
			d.state.Cursor = 0
			return d.statusReply(req, OpLoadTOC, StatusBad)
		}
		d.state.Cursor = 0
		d.state.ForcedNextCommand = session.CommandAny
	} else {
		d.state.ForcedNextCommand = session.CommandLoadTOC
	}
	return d.statusReply(req, OpLoadTOC, StatusOK)
}

func (d *Dispatcher) handleGetList(req frame.Frame) frame.Frame {
	toc, _ := d.state.DecodeTOC()

	first := d.state.Cursor == 0
	if first {
		if toc.Header.ProtectedHeader.NeedsTouch() {
			d.waitTouch()
		}
		d.led.Set(hw.Green)
	}

	totalBytes := int(toc.Header.DescriptorCount) * record.SizeDescriptor
	cur := int(abs32(d.state.Cursor))
	n := min(totalBytes-cur, PayloadMaxLen)

	body := make([]byte, replyLen[OpGetList]-1)
	if first {
		body[0] = toc.Header.DescriptorCount
	} else {
		body[0] = StatusOK
	}
	blob := toc.DescriptorsBlob()
	copy(body[1:1+n], blob[cur:cur+n])

	d.state.Cursor -= int32(n)
	if int(abs32(d.state.Cursor)) == totalBytes {
		d.state.Cursor = 0
		d.state.ForcedNextCommand = session.CommandAny
	} else {
		d.state.ForcedNextCommand = session.CommandGetList
	}
	return d.reply(req, OpGetList, body)
}

func (d *Dispatcher) handleGetEncryptedTOC(req frame.Frame) frame.Frame {
	toc, _ := d.state.DecodeTOC()
	if toc.Header.DescriptorCount == 0 {
		d.led.Set(hw.Red)
		return d.statusReply(req, OpGetEncryptedTOC, StatusBad)
	}

	blobLen := int(toc.Header.DescriptorCount) * record.SizeDescriptor
	first := d.state.Cursor == 0
	if first {
		ad := []byte{toc.Header.ProtectedHeader.Settings}
		blob := d.state.TOCBuf[record.SizeTOCHeader : record.SizeTOCHeader+blobLen]
		nonce, mac, err := d.envelope.Lock(d.trng, blob, ad)
		if err != nil {
			d.led.Set(hw.Red)
			return d.statusReply(req, OpGetEncryptedTOC, StatusBad)
		}
		copy(d.state.TOCBuf[1:1+record.NonceSize], nonce[:])
		copy(d.state.TOCBuf[1+record.NonceSize:1+record.NonceSize+record.MACSize], mac[:])
	}

	totalBytes := record.SizeTOCHeader + blobLen
	cur := int(abs32(d.state.Cursor))
	n := min(totalBytes-cur, PayloadMaxLen)

	body := make([]byte, replyLen[OpGetEncryptedTOC]-1)
	body[0] = StatusOK
	copy(body[1:1+n], d.state.TOCBuf[cur:cur+n])

	d.state.Cursor -= int32(n)
	if int(abs32(d.state.Cursor)) == totalBytes {
		d.led.Set(hw.Blue | hw.Red)
		d.state.Cursor = 0
		d.state.ForcedNextCommand = session.CommandLoadTOC
	} else {
		d.state.ForcedNextCommand = session.CommandGetEncryptedTOC
	}
	return d.reply(req, OpGetEncryptedTOC, body)
}

func (d *Dispatcher) handlePut(req frame.Frame) frame.Frame {
	toc, _ := d.state.DecodeTOC()
	if int(toc.Header.DescriptorCount)+1 > record.DescriptorMaxCount {
		return d.statusReply(req, OpPut, StatusBad)
	}

	if len(req.Payload) < 1 {
		return d.statusReply(req, OpPut, StatusBad)
	}
	chunk := req.Payload[1:]
	d.led.Set(hw.Blue)

	n := min(record.SizePutRecord-int(d.state.Cursor), PayloadMaxLen)
	copy(d.state.RecordBuf[d.state.Cursor:int(d.state.Cursor)+n], chunk[0:n])
	d.state.Cursor += int32(n)

	if int(d.state.Cursor) != record.SizePutRecord {
		d.state.ForcedNextCommand = session.CommandPut
		return d.statusReply(req, OpPut, StatusOK)
	}

	d.led.Set(hw.Green)
	d.state.Cursor = 0

	var put record.PutRecord
	_ = put.UnmarshalBinary(d.state.RecordBuf[:])
	if err := put.Validate(); err != nil {
		d.led.Set(hw.Red)
		d.state.ForcedNextCommand = session.CommandAny
		return d.statusReply(req, OpPut, StatusBad)
	}

	var desc record.Descriptor
	desc.NameLen = put.NameLen
	copy(desc.Name[:], put.RawName())
	toc.Descriptors[toc.Header.DescriptorCount] = desc
	toc.Header.DescriptorCount++
	d.state.EncodeTOC(toc)

	for i := record.SizeRecord; i < record.SizePutRecord; i++ {
		d.state.RecordBuf[i] = 0
	}

	secretBuf := d.state.RecordBuf[0:record.SizeSecret]
	ad := d.state.RecordBuf[record.SizeSecret : record.SizeSecret+record.SizeProtected]
	nonce, mac, err := d.envelope.Lock(d.trng, secretBuf, ad)
	if err != nil {
		return d.statusReply(req, OpPut, StatusBad)
	}
	copy(d.state.RecordBuf[record.SizeRecord:record.SizeRecord+record.NonceSize], nonce[:])
	copy(d.state.RecordBuf[record.SizeRecord+record.NonceSize:record.SizeRecord+record.NonceSize+record.MACSize], mac[:])

	d.state.RecordBufEncrypted = true
	d.state.ForcedNextCommand = session.CommandPutGetRecord
	return d.statusReply(req, OpPut, StatusOK)
}

func (d *Dispatcher) handlePutGetRecord(req frame.Frame) frame.Frame {
	if !d.state.RecordBufEncrypted {
		d.led.Set(hw.Red)
		return d.statusReply(req, OpPutGetRecord, StatusBad)
	}

	body := make([]byte, replyLen[OpPutGetRecord]-1)
	body[0] = StatusOK
	copy(body[1:1+record.SizeSecureRecord], d.state.RecordBuf[0:record.SizeSecureRecord])

	d.state.RecordBufEncrypted = false
	d.state.ForcedNextCommand = session.CommandAny
	return d.reply(req, OpPutGetRecord, body)
}

func (d *Dispatcher) handleCalculate(req frame.Frame) frame.Frame {
	if len(req.Payload) < 1+record.SizeCalculate {
		return d.statusReply(req, OpCalculate, StatusBad)
	}
	copy(d.state.RecordBuf[0:record.SizeCalculate], req.Payload[1:1+record.SizeCalculate])

	var calc record.Calculate
	_ = calc.UnmarshalBinary(d.state.RecordBuf[0:record.SizeCalculate])

	secretBuf := d.state.RecordBuf[0:record.SizeSecret]
	ad := d.state.RecordBuf[record.SizeSecret : record.SizeSecret+record.SizeProtected]

	if err := d.envelope.Unlock(secretBuf, calc.SecureRecord.Nonce, calc.SecureRecord.MAC, ad); err != nil {
		d.led.Set(hw.Red)
		return d.statusReply(req, OpCalculate, StatusBad)
	}

	var protected record.Protected
	_ = protected.UnmarshalBinary(ad)

	if oath.AlgorithmOf(protected.Properties) != oath.AlgSHA1 {
		return d.statusReply(req, OpCalculate, StatusBad)
	}

	if protected.NeedsTouch() {
		d.waitTouch()
	}

	var secret record.Secret
	_ = secret.UnmarshalBinary(secretBuf)
	if err := secret.Validate(); err != nil {
		return d.statusReply(req, OpCalculate, StatusBad)
	}

	var seq uint64
	if protected.IsHOTP() {
		seq = protected.CounterOrTimestep
		protected.CounterOrTimestep++
	} else {
		if protected.CounterOrTimestep == 0 {
			return d.statusReply(req, OpCalculate, StatusBad)
		}
		seq = uint64(calc.Time) / protected.CounterOrTimestep
	}

	value, err := oath.HOTP(secret.RawKey(), seq, int(protected.Digits))
	if err != nil {
		return d.statusReply(req, OpCalculate, StatusBad)
	}

	body := make([]byte, replyLen[OpCalculate]-1)
	body[0] = StatusOK
	binary.LittleEndian.PutUint32(body[1:5], value)

	if protected.IsHOTP() {
		protected.MarshalTo(ad)
		nonce, mac, err := d.envelope.Lock(d.trng, secretBuf, ad)
		if err == nil {
			copy(d.state.RecordBuf[record.SizeRecord:record.SizeRecord+record.NonceSize], nonce[:])
			copy(d.state.RecordBuf[record.SizeRecord+record.NonceSize:record.SizeRecord+record.NonceSize+record.MACSize], mac[:])
			copy(body[5:5+record.SizeSecureRecord], d.state.RecordBuf[0:record.SizeSecureRecord])
			body[0] = StatusOKRecord
		}
	}

	return d.reply(req, OpCalculate, body)
}
