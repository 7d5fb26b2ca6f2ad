package dispatcher

import "github.com/tillitis/tkey-device-oath/pkg/session"

// Wire opcodes, byte 0 of a request payload.
const (
	OpGetNameVersion byte = 0x01
	OpLoadTOC        byte = 0x03
	OpGetList        byte = 0x05
	OpGetEncryptedTOC byte = 0x07
	OpPut            byte = 0x09
	OpPutGetRecord   byte = 0x0b
	OpCalculate      byte = 0x0d
	OpUnknown        byte = 0xff
)

// StatusOK and StatusBad are the reply-body status byte values used by
// every command except GET_NAMEVERSION and GET_LIST's first chunk.
const (
	StatusOK  byte = 0x00
	StatusBad byte = 0x01

	// StatusOKRecord is CALCULATE's success status when the body also
	// carries a re-encrypted SecureRecord (the HOTP counter-advance
	// case). The reply body is always zero-padded to its fixed length,
	// so the tail's presence is flagged explicitly here rather than
	// left for a parser to infer from trailing non-zero bytes.
	StatusOKRecord byte = 0x02
)

// PayloadMaxLen bounds one chunk of a multi-frame transfer:
// CMDLEN_MAXBYTES (the largest frame payload, 128) minus the 1-byte
// opcode.
const (
	CmdLenMaxBytes = 128
	PayloadMaxLen  = CmdLenMaxBytes - 1
)

// replyLen maps an opcode to its fixed reply body length.
var replyLen = map[byte]int{
	OpGetNameVersion:  32,
	OpLoadTOC:         4,
	OpGetList:         128,
	OpGetEncryptedTOC: 128,
	OpPut:             4,
	OpPutGetRecord:    128,
	OpCalculate:       128,
}

// sessionCommand maps a wire opcode to the Command value session.State
// gates forced-next-command transitions on.
var sessionCommand = map[byte]session.Command{
	OpGetNameVersion:  session.CommandGetNameVersion,
	OpLoadTOC:         session.CommandLoadTOC,
	OpGetList:         session.CommandGetList,
	OpGetEncryptedTOC: session.CommandGetEncryptedTOC,
	OpPut:             session.CommandPut,
	OpPutGetRecord:    session.CommandPutGetRecord,
	OpCalculate:       session.CommandCalculate,
}
