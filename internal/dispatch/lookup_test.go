package dispatch

import (
	"testing"

	"github.com/availcore/avail/internal/typesystem"
)

func tcon(name string) typesystem.Type { return typesystem.TCon{Name: name} }

func TestLookupResolvesMostSpecific(t *testing.T) {
	b := NewBundle("describe", 1)
	mustAdd(t, b, &Definition{Signature: []typesystem.Type{tcon("Number")}})
	mustAdd(t, b, &Definition{Signature: []typesystem.Type{tcon("Int")}})

	def, err := b.LookupByTypes([]typesystem.Type{tcon("Int")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Signature[0].String() != "Int" {
		t.Fatalf("expected Int to win over Number, got %s", def.Signature[0].String())
	}
}

func TestLookupNoMethod(t *testing.T) {
	b := NewBundle("describe", 1)
	mustAdd(t, b, &Definition{Signature: []typesystem.Type{tcon("String")}})

	_, err := b.LookupByTypes([]typesystem.Type{tcon("Int")})
	if err == nil {
		t.Fatal("expected no-method error")
	}
	le, ok := err.(*LookupError)
	if !ok || le.Kind != "no-method" {
		t.Fatalf("expected no-method LookupError, got %v", err)
	}
}

func TestAddDefinitionRejectsDuplicateSignature(t *testing.T) {
	b := NewBundle("describe", 1)
	mustAdd(t, b, &Definition{Signature: []typesystem.Type{tcon("Int")}})
	err := b.AddDefinition(&Definition{Signature: []typesystem.Type{tcon("Int")}})
	if err == nil {
		t.Fatal("expected duplicate-signature rejection")
	}
}

func TestLookupAmbiguousWhenTwoArgsEachMoreSpecificInDifferentPosition(t *testing.T) {
	b := NewBundle("combine", 2)
	mustAdd(t, b, &Definition{Signature: []typesystem.Type{tcon("Int"), tcon("Number")}})
	mustAdd(t, b, &Definition{Signature: []typesystem.Type{tcon("Number"), tcon("Int")}})

	_, err := b.LookupByTypes([]typesystem.Type{tcon("Int"), tcon("Int")})
	if err == nil {
		t.Fatal("expected ambiguous-method error")
	}
	le, ok := err.(*LookupError)
	if !ok || le.Kind != "ambiguous-method" {
		t.Fatalf("expected ambiguous-method LookupError, got %v", err)
	}
}

func mustAdd(t *testing.T, b *Bundle, d *Definition) {
	t.Helper()
	if err := b.AddDefinition(d); err != nil {
		t.Fatalf("AddDefinition: %v", err)
	}
}
