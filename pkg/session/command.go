package session

// Command identifies a wire opcode for the purposes of the
// forced-next-command gate. It is defined here rather than in
// pkg/dispatcher so that State can name its own constraint field
// without dispatcher importing session importing dispatcher. The
// dispatcher package keeps wire opcodes as bytes and maps each one
// onto a Command before consulting the gate; see DESIGN.md.
type Command uint8

const (
	// CommandAny is the zero value: no constraint.
	CommandAny Command = iota
	CommandGetNameVersion
	CommandLoadTOC
	CommandGetList
	CommandGetEncryptedTOC
	CommandPut
	CommandPutGetRecord
	CommandCalculate

	// CommandUnknown stands for any opcode the dispatcher doesn't
	// recognize. It is never assigned as a ForcedNextCommand value, so
	// Allow rejects it whenever a forced command is set, matching the
	// original firmware comparing cmd[0] directly against
	// forced_next_command.
	CommandUnknown
)
