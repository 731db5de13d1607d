package l2

import "testing"

func TestChunkInvalidateFallsBack(t *testing.T) {
	c := NewChunk(nil, []Instruction{{Op: ReturnValue, Operands: []Operand{Read(0)}}}, 1)
	if !c.Valid() {
		t.Fatal("new chunk should be valid")
	}
	c.Invalidate()
	if c.Valid() {
		t.Fatal("invalidated chunk should report invalid")
	}
}

func TestBranchDeclaresBothSuccessors(t *testing.T) {
	ins := Instruction{Op: JumpIfBoolean, Operands: []Operand{Read(0), Target(5)}}
	succ := ins.Successors(2)
	if len(succ) != 2 || succ[0] != 5 || succ[1] != 2 {
		t.Fatalf("expected successors [5 2], got %v", succ)
	}
}

func TestMoveConstantDefUse(t *testing.T) {
	ins := Instruction{Op: MoveConstant, Operands: []Operand{Write(1), Lit(0)}}
	if defs := ins.Defs(); len(defs) != 1 || defs[0] != 1 {
		t.Fatalf("expected def r1, got %v", defs)
	}
	if uses := ins.Uses(); len(uses) != 0 {
		t.Fatalf("expected no register uses for a literal operand, got %v", uses)
	}
}
