package hostapi

import (
	"github.com/tillitis/tkey-device-oath/pkg/record"
)

// BuildPutRecord packs a plaintext oath_record_put the way the
// original firmware's build_put_command does: it never touches the
// wire encoding directly, leaving that to record.PutRecord's own
// Marshal methods.
func BuildPutRecord(key []byte, counterOrTimestep uint64, isTOTP, needsTouch bool, digits uint8, name string) (record.PutRecord, error) {
	var pr record.PutRecord

	var properties uint8
	if !isTOTP {
		properties |= record.PropTypeHOTP
	}
	if needsTouch {
		properties |= record.PropTouch
	}

	pr.Record.Protected = record.Protected{
		CounterOrTimestep: counterOrTimestep,
		Properties:        properties,
		Digits:            digits,
	}

	var secret record.Secret
	secret.KeyLen = uint8(len(key))
	copy(secret.Key[:], key)
	secret.MarshalTo(pr.Record.EncryptedBlob[:])

	pr.NameLen = uint8(len(name))
	copy(pr.Name[:], name)

	if err := pr.Validate(); err != nil {
		return record.PutRecord{}, err
	}
	if err := secret.Validate(); err != nil {
		return record.PutRecord{}, err
	}
	return pr, nil
}

// BuildCalculate packs a host request for CALCULATE: the ciphertext
// SecureRecord the device previously issued, plus the time the caller
// wants it evaluated against (ignored by the device for HOTP records).
func BuildCalculate(secure record.SecureRecord, unixTime uint32) record.Calculate {
	return record.Calculate{SecureRecord: secure, Time: unixTime}
}
