package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is a named list of arithmetic checks.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Checks are evaluated in order. All checks run even after a failure.
	Checks []Check `yaml:"checks" json:"checks"`
}

// Check is a single operation and its expected outcome.
type Check struct {
	// Op is the operation, e.g. "wrapping_add" or "mul" for floats.
	Op string `yaml:"op" json:"op"`

	// Type is the numeric type the operands are resolved in, e.g. "int32".
	Type string `yaml:"type" json:"type"`

	// A and B are the operands.
	A Operand `yaml:"a" json:"a"`
	B Operand `yaml:"b" json:"b"`

	// Expect lists the outcome fields to verify. Unset fields are not checked.
	Expect Expect `yaml:"expect" json:"expect"`
}

// Expect is a subset match on an Outcome.
type Expect struct {
	Value    *Operand `yaml:"value,omitempty" json:"value,omitempty"`
	Present  *bool    `yaml:"present,omitempty" json:"present,omitempty"`
	Overflow *bool    `yaml:"overflow,omitempty" json:"overflow,omitempty"`
	Infinite *bool    `yaml:"infinite,omitempty" json:"infinite,omitempty"`
}

// IsEmpty reports whether no expectation is set.
func (e Expect) IsEmpty() bool {
	return e.Value == nil && e.Present == nil && e.Overflow == nil && e.Infinite == nil
}

// Operand is the raw text of an operand: "max", "min" or a numeric literal.
// It is resolved against a concrete type only when the check runs.
type Operand struct {
	Raw string
}

// UnmarshalYAML keeps the scalar text as written, so "0x7fffffff" and
// "4294967295" are not coerced through YAML's own integer handling.
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: operand must be a scalar", node.Line)
	}
	o.Raw = strings.TrimSpace(node.Value)
	return nil
}

// MarshalJSON encodes the operand as its raw text.
func (o Operand) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Raw)
}

func (o Operand) String() string {
	return o.Raw
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains unknown
// fields, fails the CUE schema or breaks a type/operation rule.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data, path)
}

// ParseScenario parses scenario YAML. name is used in schema error positions.
func ParseScenario(data []byte, name string) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSchema(&scenario, name); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks the rules the schema does not cover.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	for i, c := range s.Checks {
		nt, ok := numericTypes[c.Type]
		if !ok {
			return fmt.Errorf("checks[%d]: unknown type %q", i, c.Type)
		}
		if !nt.supports(c.Op) {
			return fmt.Errorf("checks[%d]: operation %q is not defined for %s", i, c.Op, c.Type)
		}
		if c.A.Raw == "" || c.B.Raw == "" {
			return fmt.Errorf("checks[%d]: operands a and b are required", i)
		}
		if c.Expect.IsEmpty() {
			return fmt.Errorf("checks[%d]: expect must set at least one field", i)
		}
		if c.Expect.Infinite != nil && !nt.float {
			return fmt.Errorf("checks[%d]: infinite is only meaningful for float types", i)
		}
	}

	return nil
}
