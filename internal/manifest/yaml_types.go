package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- NameList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for NameList.
// Accepts either a single string or an array of strings.
func (s *NameList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value != "" {
			*s = NameList{{Value: node.Value, Pos: positionOf(node)}}
		} else {
			*s = NameList{}
		}

		return nil

	case yaml.SequenceNode:
		names := make(NameList, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected name, got %v", item.Line, item.Kind)
			}

			names = append(names, Name{Value: item.Value, Pos: positionOf(item)})
		}

		*s = names

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for NameList.
// Outputs a single string if length is 1, otherwise an array.
func (s NameList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0].Value, nil
	}

	values := make([]string, 0, len(s))
	for _, n := range s {
		values = append(values, n.Value)
	}

	return values, nil
}

// --- declaration YAML methods ---

func (d *StructDef) UnmarshalYAML(node *yaml.Node) error {
	type plain StructDef

	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}

	d.Pos = namePosition(node)

	return nil
}

func (d *EnumDef) UnmarshalYAML(node *yaml.Node) error {
	type plain EnumDef

	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}

	d.Pos = namePosition(node)

	return nil
}

func (d *MessageDef) UnmarshalYAML(node *yaml.Node) error {
	type plain MessageDef

	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}

	d.Pos = namePosition(node)

	return nil
}

func (d *ExportDef) UnmarshalYAML(node *yaml.Node) error {
	type plain ExportDef

	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}

	d.Pos = namePosition(node)

	return nil
}

// namePosition returns the position of the name value of a mapping,
// or of the mapping itself when it has no name key.
func namePosition(node *yaml.Node) Position {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "name" {
				return positionOf(node.Content[i+1])
			}
		}
	}

	return positionOf(node)
}

func positionOf(node *yaml.Node) Position {
	return Position{Line: node.Line, Column: node.Column}
}

// --- TypeExpr YAML methods ---

// UnmarshalYAML reads a scalar type expression and remembers its position.
func (t *TypeExpr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected type expression, got %v", node.Line, node.Kind)
	}

	*t = TypeExpr{Expr: node.Value, Line: node.Line, Column: node.Column}

	return nil
}

// MarshalYAML writes the bare expression.
func (t TypeExpr) MarshalYAML() (any, error) {
	return t.Expr, nil
}

// IsZero lets omitempty drop unset expressions.
func (t TypeExpr) IsZero() bool {
	return t.Expr == ""
}

func (t TypeExpr) String() string {
	return t.Expr
}
