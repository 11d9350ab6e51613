package jsonschema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseFragment parses a hand-authored YAML schema fragment into a Doc,
// preserving the author's key order. The fragment root must be a
// mapping.
func ParseFragment(data []byte) (*Doc, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return New(), nil
	}
	v, err := fromNode(root.Content[0])
	if err != nil {
		return nil, err
	}
	doc, ok := v.(*Doc)
	if !ok {
		return nil, fmt.Errorf("jsonschema: fragment root must be a mapping")
	}
	return doc, nil
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		d := New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			if d.Has(key) {
				return nil, fmt.Errorf("jsonschema: duplicate fragment key %q", key)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			d.Set(key, v)
		}
		return d, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.AliasNode:
		return fromNode(n.Alias)
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
