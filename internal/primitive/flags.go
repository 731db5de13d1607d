// Package primitive implements Avail's numbered primitive functions:
// the fixed side-effecting operations method bodies may invoke instead
// of running L1 bytecode (spec §4.2, §6). A primitive failure does not
// fall back to the method's L1 body: internal/interp ends the send with
// an error.
package primitive

// Flag is one bit of a primitive's declared behavior. Only CannotFail
// is acted on, by Registry.Invoke; the generator, the interpreter and
// the loader do not read the other bits, which are recorded metadata.
type Flag uint32

const (
	CanInline Flag = 1 << iota
	CanFold
	CannotFail
	HasSideEffect
	Invokes
	Bootstrap
	ReadsFromHiddenGlobalState
	WritesToHiddenGlobalState
	CanSuspend
	Private
	Unknown
)

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }
