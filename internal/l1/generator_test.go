package l1

import (
	"testing"

	"github.com/availcore/avail/internal/object"
)

func TestNybbleOperandRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 7, 8, 63, 64, 511, 1 << 20}
	w := NewNybbleWriter()
	for _, v := range values {
		w.WriteOperand(v)
	}
	r := NewNybbleReader(w.Bytes())
	for _, want := range values {
		got := r.ReadOperand()
		if got != want {
			t.Fatalf("operand round trip: want %d, got %d", want, got)
		}
	}
}

func TestGeneratorTracksMaxDepth(t *testing.T) {
	g := NewGenerator(2, 0)
	g.PushLocal(1)
	g.PushLocal(2)
	g.MakeTuple(2)
	g.Return()

	_, _, maxDepth := g.Finish()
	if maxDepth != 2 {
		t.Fatalf("expected max depth 2, got %d", maxDepth)
	}
}

func TestGeneratorInternsDuplicateLiterals(t *testing.T) {
	g := NewGenerator(0, 0)
	five := object.IntValue(5)
	idx1 := g.InternLiteral(five)
	idx2 := g.InternLiteral(object.IntValue(5))
	if idx1 != idx2 {
		t.Fatalf("expected identical literal to reuse pool slot, got %d and %d", idx1, idx2)
	}
	if len(g.literals) != 1 {
		t.Fatalf("expected a single interned literal, got %d", len(g.literals))
	}
}

func TestLabelDeclarationMustBeFirst(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when label declaration is not first")
		}
	}()
	g := NewGenerator(0, 0)
	g.PushLiteral(object.IntValue(1))
	g.markNonLabel()
	g.LabelDeclaration()
}

func TestDecodeRoundTrip(t *testing.T) {
	g := NewGenerator(1, 0)
	g.PushLocal(1)
	g.Pop()
	g.Return()
	nybbles, _, _ := g.Finish()

	decoded := Decode(nybbles)
	if len(decoded) != 3 {
		t.Fatalf("expected 3 decoded instructions, got %d", len(decoded))
	}
	if decoded[0].Op != PushLocal || decoded[0].Operands[0] != 1 {
		t.Fatalf("unexpected first instruction: %+v", decoded[0])
	}
	if decoded[1].Op != Pop {
		t.Fatalf("expected Pop, got %s", decoded[1].Op)
	}
	if decoded[2].Op != Return {
		t.Fatalf("expected Return, got %s", decoded[2].Op)
	}
}
