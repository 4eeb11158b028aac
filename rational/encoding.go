// SPDX-License-Identifier: MIT

package rational

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the canonical String form.
func (v Value) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}

// MarshalJSON encodes v as a JSON string ("5/2") so no precision is lost.
func (v Value) MarshalJSON() ([]byte, error) { return []byte(strconv.Quote(v.String())), nil }

// UnmarshalJSON accepts both JSON numbers (2, 0.25, 1e-3) and strings
// ("-7/4"). Numbers are read from their literal text, so 0.1 becomes 1/10
// exactly.
func (v *Value) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("UnmarshalJSON(null): %w", ErrSyntax)
	}
	if len(raw) > 0 && raw[0] == '"' {
		s, err := strconv.Unquote(string(raw))
		if err != nil {
			return fmt.Errorf("UnmarshalJSON(%s): %w", raw, ErrSyntax)
		}
		raw = []byte(s)
	}

	return v.UnmarshalText(raw)
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes ("3", 0.5, "1/3").
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("UnmarshalYAML(line %d): %w", node.Line, ErrSyntax)
	}

	return v.UnmarshalText([]byte(node.Value))
}

// MarshalYAML renders v as its canonical string.
func (v Value) MarshalYAML() (interface{}, error) { return v.String(), nil }
