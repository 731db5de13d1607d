package object

import "errors"

// ErrSpecialAtom is returned when code attempts to mutate a special
// atom's property map (spec §6 error code "special-atom").
var ErrSpecialAtom = errors.New("special-atom")

// ErrFiberTerminated is returned when an operation targets a fiber that
// has already left the running states (spec §6 error code
// "fiber-is-terminated").
var ErrFiberTerminated = errors.New("fiber-is-terminated")
