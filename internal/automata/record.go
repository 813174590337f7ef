package automata

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is a named state as kept in the library and in pattern files.
// Kind names the simulation the state belongs to; Rule optionally stores the
// engine configuration it was saved with.
type Record[S State[S]] struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Rule  string `yaml:"rule,omitempty"`
	State S      `yaml:"state"`
}

// Header is the state-independent part of a Record.
type Header struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Rule string `yaml:"rule,omitempty"`
}

// EncodeRecord serializes rec as YAML.
func EncodeRecord[S State[S]](rec Record[S]) ([]byte, error) {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("automata: encode %q: %w", rec.Name, err)
	}
	return data, nil
}

// DecodeRecord parses a record produced by EncodeRecord.
func DecodeRecord[S State[S]](data []byte) (Record[S], error) {
	var rec Record[S]
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("automata: decode record: %w", err)
	}
	var zero S
	if any(rec.State) == any(zero) {
		return rec, fmt.Errorf("%w: record %q has no state", ErrCorruptState, rec.Name)
	}
	return rec, nil
}

// PeekHeader reads the name, kind and rule of an encoded record without
// decoding its state.
func PeekHeader(data []byte) (Header, error) {
	var h Header
	if err := yaml.Unmarshal(data, &h); err != nil {
		return h, fmt.Errorf("automata: decode record header: %w", err)
	}
	return h, nil
}
