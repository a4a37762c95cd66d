package conformance

import (
	"fmt"
	"strconv"

	"github.com/erhanbaris/karamel-sub001/primitives"
	"gopkg.in/yaml.v3"
)

// Value decodes a YAML node into a program value. Mappings are ordered
// dicts, the !atom tag makes an atom and !empty or null is Empty.
type Value struct {
	primitives.Primitive
}

var _ yaml.Unmarshaler = new(Value)

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	p, err := decodeNode(node)
	if err != nil {
		return err
	}
	v.Primitive = p
	return nil
}

func decodeNode(node *yaml.Node) (primitives.Primitive, error) {
	switch node.Kind {

	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			return primitives.Empty{}, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, err
			}
			return primitives.Bool(b), nil
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				var n float64
				if err := node.Decode(&n); err != nil {
					return nil, err
				}
				f = n
			}
			return primitives.Number(f), nil
		case "!empty":
			return primitives.Empty{}, nil
		case "!atom":
			return primitives.NewAtom(node.Value), nil
		case "!!str", "!text":
			return primitives.Text(node.Value), nil
		}
		return nil, fmt.Errorf("line %d: unsupported tag %s", node.Line, node.Tag)

	case yaml.SequenceNode:
		items := make([]primitives.Primitive, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return primitives.NewList(items...), nil

	case yaml.MappingNode:
		dict := primitives.NewDict()
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := decodeNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			dict.Set(node.Content[i].Value, value)
		}
		return dict, nil

	case yaml.AliasNode:
		return decodeNode(node.Alias)

	}
	return nil, fmt.Errorf("line %d: unsupported node", node.Line)
}
