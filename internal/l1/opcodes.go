// Package l1 implements the Level One nybblecode: a compact,
// stack-based instruction encoding produced by the generator in this
// package and interpreted by internal/interp (spec §4.1).
package l1

// Opcode is a single Level One instruction. Operands follow the opcode
// in the nybble stream as variable-length unsigned integers (see
// NybbleWriter.WriteOperand/NybbleReader.ReadOperand).
type Opcode byte

const (
	PushLiteral Opcode = iota
	PushLocal
	PushOuter
	GetLocalClearing
	GetOuterClearing
	SetLocal
	SetOuter
	PushLastOuter
	GetTypeAtDepth
	MakeTuple
	Pop
	Call
	SuperCall
	CloseCode
	PushLabel
	LabelDeclaration
	Return
	ExtensionEscape
)

var names = map[Opcode]string{
	PushLiteral:      "push-literal",
	PushLocal:        "push-local",
	PushOuter:        "push-outer",
	GetLocalClearing: "get-local-clearing",
	GetOuterClearing: "get-outer-clearing",
	SetLocal:         "set-local",
	SetOuter:         "set-outer",
	PushLastOuter:    "push-last-outer",
	GetTypeAtDepth:   "get-type-at-depth",
	MakeTuple:        "make-tuple",
	Pop:              "pop",
	Call:             "call",
	SuperCall:        "super-call",
	CloseCode:        "close-code",
	PushLabel:        "push-label",
	LabelDeclaration: "label-declaration",
	Return:           "return",
	ExtensionEscape:  "extension-escape",
}

func (op Opcode) String() string {
	if n, ok := names[op]; ok {
		return n
	}
	return "unknown-opcode"
}

// fixedStackEffect gives the net operand-stack delta an instruction
// contributes, independent of its operand values; used by the
// generator's depth tracker (spec I3 "statically known, identical on
// every control path"). Instructions whose effect depends on an
// operand (MakeTuple, Call, SuperCall, CloseCode) are handled
// specially by the generator rather than through this table.
var fixedStackEffect = map[Opcode]int{
	PushLiteral:      1,
	PushLocal:        1,
	PushOuter:        1,
	GetLocalClearing: 1,
	GetOuterClearing: 1,
	SetLocal:         -1,
	SetOuter:         -1,
	PushLastOuter:    1,
	GetTypeAtDepth:   1,
	Pop:              -1,
	PushLabel:        1,
	LabelDeclaration: 0,
	Return:           0,
	ExtensionEscape:  0,
}
