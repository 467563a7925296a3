package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// fieldDefYAML is the full form of a field entry.
type fieldDefYAML struct {
	Name   string `yaml:"name"`
	Alias  string `yaml:"alias,omitempty"`
	Role   Role   `yaml:"role,omitempty"`
	Target string `yaml:"target,omitempty"`
	Kind   Kind   `yaml:"kind,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for FieldDef.
// Accepts:
//   - Shorthand: {FullName: Full_Name__c}
//   - Full entry: {name: Users, alias: Contacts, role: child, target: User}
func (f *FieldDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected field mapping, got %v", node.Line, node.Kind)
	}

	if isShorthand(node) {
		var name, alias string

		if err := node.Content[0].Decode(&name); err != nil {
			return err
		}

		if err := node.Content[1].Decode(&alias); err != nil {
			return err
		}

		*f = FieldDef{Name: name, Alias: alias}

		return nil
	}

	var full fieldDefYAML
	if err := node.Decode(&full); err != nil {
		return err
	}

	if full.Name == "" {
		return fmt.Errorf("line %d: field entry without a name", node.Line)
	}

	*f = FieldDef(full)

	return nil
}

// MarshalYAML implements custom YAML marshaling for FieldDef.
// Plain aliased fields use the shorthand form.
func (f FieldDef) MarshalYAML() (any, error) {
	if f.Role == RoleNone && f.Target == "" && f.Kind == KindAny && f.Alias != "" {
		return map[string]string{f.Name: f.Alias}, nil
	}

	return fieldDefYAML(f), nil
}

// isShorthand reports a single-pair mapping whose key is not a full-entry key.
func isShorthand(node *yaml.Node) bool {
	if len(node.Content) != 2 {
		return false
	}

	key, value := node.Content[0], node.Content[1]
	if value.Kind != yaml.ScalarNode {
		return false
	}

	return key.Value != "name"
}
