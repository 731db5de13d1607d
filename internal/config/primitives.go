package config

import (
	_ "embed"
	"fmt"

	"github.com/availcore/avail/internal/primitive"
	"gopkg.in/yaml.v3"
)

//go:embed primitives.yaml
var primitivesYAML []byte

// PrimitiveDescriptor is the declarative, YAML-sourced description of
// one numbered primitive (spec §6 "Primitives"). It is consulted by
// tooling that needs a primitive's flags and failure type without
// importing the registry that holds its Go implementation.
type PrimitiveDescriptor struct {
	Number      int      `yaml:"number"`
	Name        string   `yaml:"name"`
	Flags       []string `yaml:"flags"`
	FailureType string   `yaml:"failureType"`
}

type primitiveTable struct {
	Primitives []PrimitiveDescriptor `yaml:"primitives"`
}

var flagNames = map[string]primitive.Flag{
	"CanInline":                  primitive.CanInline,
	"CanFold":                    primitive.CanFold,
	"CannotFail":                 primitive.CannotFail,
	"HasSideEffect":              primitive.HasSideEffect,
	"Invokes":                    primitive.Invokes,
	"Bootstrap":                  primitive.Bootstrap,
	"ReadsFromHiddenGlobalState": primitive.ReadsFromHiddenGlobalState,
	"WritesToHiddenGlobalState":  primitive.WritesToHiddenGlobalState,
	"CanSuspend":                 primitive.CanSuspend,
	"Private":                    primitive.Private,
	"Unknown":                    primitive.Unknown,
}

// ResolveFlags resolves d's string flag names into the bitset the
// primitive registry actually consults.
func (d PrimitiveDescriptor) ResolveFlags() (primitive.Flag, error) {
	var out primitive.Flag
	for _, name := range d.Flags {
		bit, ok := flagNames[name]
		if !ok {
			return 0, fmt.Errorf("config: unknown primitive flag %q on primitive %d (%s)", name, d.Number, d.Name)
		}
		out |= bit
	}
	return out, nil
}

// LoadPrimitiveDescriptors parses the embedded primitive descriptor
// table. cmd/avail's "primitives" command lists it; nothing checks it
// against the live primitive.Registry.
func LoadPrimitiveDescriptors() ([]PrimitiveDescriptor, error) {
	var table primitiveTable
	if err := yaml.Unmarshal(primitivesYAML, &table); err != nil {
		return nil, fmt.Errorf("config: parse primitive descriptor table: %w", err)
	}
	return table.Primitives, nil
}
