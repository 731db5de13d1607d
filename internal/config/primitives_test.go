package config

import (
	"testing"

	"github.com/availcore/avail/internal/primitive"
)

func TestLoadPrimitiveDescriptors(t *testing.T) {
	descs, err := LoadPrimitiveDescriptors()
	if err != nil {
		t.Fatalf("LoadPrimitiveDescriptors: %v", err)
	}
	if len(descs) == 0 {
		t.Fatal("expected at least one descriptor")
	}

	var divide *PrimitiveDescriptor
	for i := range descs {
		if descs[i].Name == "Integer/Integer" {
			divide = &descs[i]
		}
	}
	if divide == nil {
		t.Fatal("expected Integer/Integer descriptor")
	}
	if divide.FailureType != "division-by-zero" {
		t.Fatalf("expected division-by-zero failure type, got %q", divide.FailureType)
	}

	flags, err := divide.ResolveFlags()
	if err != nil {
		t.Fatalf("ResolveFlags: %v", err)
	}
	if flags.Has(primitive.CannotFail) {
		t.Fatal("Integer/Integer can fail on division by zero, should not carry CannotFail")
	}
	if !flags.Has(primitive.CanFold) {
		t.Fatal("expected CanFold")
	}
}

func TestResolveFlagsRejectsUnknownName(t *testing.T) {
	d := PrimitiveDescriptor{Number: 99, Name: "bogus", Flags: []string{"NotARealFlag"}}
	if _, err := d.ResolveFlags(); err == nil {
		t.Fatal("expected error for unknown flag name")
	}
}

func TestErrorCodeNamesMatchSpec(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrNoMethod:                  "no-method",
		ErrAmbiguousMethodDefinition: "ambiguous-method-definition",
		ErrSubscriptOutOfBounds:      "subscript-out-of-bounds",
	}
	for code, want := range cases {
		if got := code.Name(); got != want {
			t.Fatalf("ErrorCode %d: want %q, got %q", code, want, got)
		}
	}
}
