package l1

import (
	"fmt"
	"strings"
)

// Disassemble renders a nybble stream as a human-readable instruction
// listing, in the teacher's "== name ==" / per-line offset format.
func Disassemble(nybbles []byte, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "== %s ==\n", name)

	offset := 0
	for _, ins := range Decode(nybbles) {
		fmt.Fprintf(&sb, "%04d %-20s", offset, ins.Op.String())
		for _, operand := range ins.Operands {
			fmt.Fprintf(&sb, " %d", operand)
		}
		sb.WriteByte('\n')
		offset++
	}
	return sb.String()
}
