package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the schema file format version written by Marshal.
const CurrentVersion = "1"

// File is the root of a YAML schema file.
type File struct {
	// Version of the schema file format.
	Version string `yaml:"version,omitempty"`

	// Types declared by the file, in order.
	Types []TypeDef `yaml:"types"`
}

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
// A type without an explicit external name is exposed under its own name.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Types {
		t := &f.Types[i]
		if t.External == "" {
			t.External = t.Name
		}
	}
}

// Registry declares every type of the file into a new registry.
func (f *File) Registry() (*Registry, error) {
	reg := NewRegistry()
	if err := reg.Declare(f.Types...); err != nil {
		return nil, err
	}

	return reg, nil
}

// Load reads a schema file into a new registry.
func Load(path string) (*Registry, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return f.Registry()
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}

// FileOf exports a registry as a schema file.
func FileOf(reg *Registry) *File {
	return &File{Version: CurrentVersion, Types: reg.Types()}
}
