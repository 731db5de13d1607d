package config

// ErrorCode is an interpreter-visible numeric error code with a stable
// symbolic name (spec §6 "Error codes"); Name and String return the
// symbolic name. The bootstrap primitives do not use this table: their
// failures carry an atom.
type ErrorCode int

const (
	ErrIncorrectArgumentType ErrorCode = iota + 1
	ErrIncorrectNumberOfArguments
	ErrNoMethod
	ErrNoMethodDefinition
	ErrAmbiguousMethodDefinition
	ErrCannotCreateContinuationForInfalliblePrimitiveFunction
	ErrLoadingIsOver
	ErrSpecialAtom
	ErrFiberIsTerminated
	ErrJavaFieldNotAvailable
	ErrIOError
	ErrPermissionDenied
	ErrNoFile
	ErrFileExists
	ErrInvalidPath
	ErrInvalidHandle
	ErrSerializationFailed
	ErrCannotConvertNotANumberToInteger
	ErrSubscriptOutOfBounds
	ErrTypeRestrictionMustAcceptOnlyTypes
)

// errorCodeNames mirrors the const block above; Name panics rather than
// silently returning "" if the two ever drift out of sync, since that
// would mean a failure surfaces under the wrong symbolic name.
var errorCodeNames = map[ErrorCode]string{
	ErrIncorrectArgumentType:          "incorrect-argument-type",
	ErrIncorrectNumberOfArguments:     "incorrect-number-of-arguments",
	ErrNoMethod:                       "no-method",
	ErrNoMethodDefinition:             "no-method-definition",
	ErrAmbiguousMethodDefinition:      "ambiguous-method-definition",
	ErrCannotCreateContinuationForInfalliblePrimitiveFunction: "cannot-create-continuation-for-infallible-primitive-function",
	ErrLoadingIsOver:                       "loading-is-over",
	ErrSpecialAtom:                         "special-atom",
	ErrFiberIsTerminated:                   "fiber-is-terminated",
	ErrJavaFieldNotAvailable:               "java-field-not-available",
	ErrIOError:                             "io-error",
	ErrPermissionDenied:                    "permission-denied",
	ErrNoFile:                              "no-file",
	ErrFileExists:                          "file-exists",
	ErrInvalidPath:                         "invalid-path",
	ErrInvalidHandle:                       "invalid-handle",
	ErrSerializationFailed:                 "serialization-failed",
	ErrCannotConvertNotANumberToInteger:    "cannot-convert-not-a-number-to-integer",
	ErrSubscriptOutOfBounds:                "subscript-out-of-bounds",
	ErrTypeRestrictionMustAcceptOnlyTypes:  "type-restriction-must-accept-only-types",
}

// Name returns the stable symbolic name for c.
func (c ErrorCode) Name() string {
	name, ok := errorCodeNames[c]
	if !ok {
		panic("config: error code missing from errorCodeNames table")
	}
	return name
}

func (c ErrorCode) String() string { return c.Name() }
