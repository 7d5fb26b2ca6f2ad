package hostapi

import (
	"encoding/binary"

	"github.com/tillitis/tkey-device-oath/pkg/dispatcher"
	"github.com/tillitis/tkey-device-oath/pkg/frame"
	"github.com/tillitis/tkey-device-oath/pkg/record"
)

// checkReply validates a reply frame's status and response code before
// a parser reads its body.
func checkReply(f frame.Frame, wantRespCode byte) ([]byte, error) {
	if f.Header.Status == frame.StatusNOK {
		return nil, ErrStatusBad
	}
	if len(f.Payload) < 1 {
		return nil, ErrReplyTooShort
	}
	if f.Payload[0] != wantRespCode {
		return nil, ErrUnexpectedResponseCode
	}
	return f.Payload[1:], nil
}

// NameVersion is the parsed GET_NAMEVERSION reply.
type NameVersion struct {
	Name0   [4]byte
	Name1   [4]byte
	Version uint32
}

// ParseGetNameVersion parses a GET_NAMEVERSION reply frame.
func ParseGetNameVersion(f frame.Frame) (NameVersion, error) {
	body, err := checkReply(f, dispatcher.OpGetNameVersion+1)
	if err != nil {
		return NameVersion{}, err
	}
	if len(body) < 12 {
		return NameVersion{}, ErrReplyTooShort
	}
	var nv NameVersion
	copy(nv.Name0[:], body[0:4])
	copy(nv.Name1[:], body[4:8])
	nv.Version = binary.LittleEndian.Uint32(body[8:12])
	return nv, nil
}

// ParseStatus parses any status-byte-only reply (LOAD_TOC, PUT), given
// the request opcode it responds to. A device-side STATUS_BAD is
// returned as ErrStatusBad so callers can treat it uniformly with a
// protocol-level NOK.
func ParseStatus(f frame.Frame, requestOpcode byte) error {
	body, err := checkReply(f, requestOpcode+1)
	if err != nil {
		return err
	}
	if len(body) < 1 {
		return ErrReplyTooShort
	}
	if body[0] == dispatcher.StatusBad {
		return ErrStatusBad
	}
	return nil
}

// ParsePutGetRecord parses a PUT_GETRECORD reply into the SecureRecord
// the device staged.
func ParsePutGetRecord(f frame.Frame) (record.SecureRecord, error) {
	body, err := checkReply(f, dispatcher.OpPutGetRecord+1)
	if err != nil {
		return record.SecureRecord{}, err
	}
	if len(body) < 1 {
		return record.SecureRecord{}, ErrReplyTooShort
	}
	if body[0] == dispatcher.StatusBad {
		return record.SecureRecord{}, ErrStatusBad
	}
	var sr record.SecureRecord
	if err := sr.UnmarshalBinary(body[1:]); err != nil {
		return record.SecureRecord{}, err
	}
	return sr, nil
}

// CalculateResult is the parsed CALCULATE reply: the OATH value, and
// for HOTP records the freshly re-encrypted SecureRecord the device
// advises replacing the old ciphertext with.
type CalculateResult struct {
	Value           uint32
	NewSecureRecord *record.SecureRecord
}

// ParseCalculate parses a CALCULATE reply. The body is always
// zero-padded to its fixed length regardless of OATH type, so whether
// a re-encrypted SecureRecord trails the value is read off the status
// byte (dispatcher.StatusOKRecord) rather than inferred from length —
// an all-zero tail would otherwise unmarshal as a bogus record.
func ParseCalculate(f frame.Frame) (CalculateResult, error) {
	body, err := checkReply(f, dispatcher.OpCalculate+1)
	if err != nil {
		return CalculateResult{}, err
	}
	if len(body) < 5 {
		return CalculateResult{}, ErrReplyTooShort
	}
	if body[0] == dispatcher.StatusBad {
		return CalculateResult{}, ErrStatusBad
	}
	result := CalculateResult{Value: binary.LittleEndian.Uint32(body[1:5])}
	if body[0] == dispatcher.StatusOKRecord {
		if len(body) < 5+record.SizeSecureRecord {
			return CalculateResult{}, ErrReplyTooShort
		}
		var sr record.SecureRecord
		if err := sr.UnmarshalBinary(body[5 : 5+record.SizeSecureRecord]); err != nil {
			return CalculateResult{}, err
		}
		result.NewSecureRecord = &sr
	}
	return result, nil
}

// GetListChunk is one parsed GET_LIST reply frame.
type GetListChunk struct {
	// DescriptorCount is only meaningful on the first chunk of a
	// transfer (when the caller has not yet received any bytes).
	DescriptorCount uint8
	Data            []byte
}

// ParseGetListChunk parses one GET_LIST reply frame. first indicates
// whether this is the first chunk of the transfer, since the meaning
// of the reply's first body byte depends on it.
func ParseGetListChunk(f frame.Frame, first bool) (GetListChunk, error) {
	body, err := checkReply(f, dispatcher.OpGetList+1)
	if err != nil {
		return GetListChunk{}, err
	}
	if len(body) < 1 {
		return GetListChunk{}, ErrReplyTooShort
	}
	chunk := GetListChunk{Data: body[1:]}
	if first {
		chunk.DescriptorCount = body[0]
	} else if body[0] == dispatcher.StatusBad {
		return GetListChunk{}, ErrStatusBad
	}
	return chunk, nil
}

// ParseGetEncryptedTOCChunk parses one GET_ENCRYPTEDTOC reply frame.
func ParseGetEncryptedTOCChunk(f frame.Frame) ([]byte, error) {
	body, err := checkReply(f, dispatcher.OpGetEncryptedTOC+1)
	if err != nil {
		return nil, err
	}
	if len(body) < 1 {
		return nil, ErrReplyTooShort
	}
	if body[0] == dispatcher.StatusBad {
		return nil, ErrStatusBad
	}
	return body[1:], nil
}
