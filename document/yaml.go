package document

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToYAML converts v into a yaml.v3 node tree. Object key order is kept.
func ToYAML(v Value) *yaml.Node {
	if v == nil {
		v = Null
	}
	switch tv := v.(type) {
	case *Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, val := range tv.All() {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				ToYAML(val))
		}
		return n
	case Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, val := range tv {
			n.Content = append(n.Content, ToYAML(val))
		}
		return n
	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(tv)}
	case Number:
		tag := "!!int"
		if strings.ContainsAny(string(tv), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(tv)}
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(tv))}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// MarshalYAML encodes v as a YAML document.
func MarshalYAML(v Value) ([]byte, error) {
	return yaml.Marshal(ToYAML(v))
}

// FromYAML converts a decoded yaml.v3 node into a Value. Mapping order is
// kept; aliases are resolved.
func FromYAML(n *yaml.Node) (Value, error) {
	if n == nil {
		return Null, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null, nil
		}
		return FromYAML(n.Content[0])
	case yaml.AliasNode:
		return FromYAML(n.Alias)
	case yaml.MappingNode:
		o := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("document: line %d: mapping key must be a scalar", k.Line)
			}
			v, err := FromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			o.Set(k.Value, v)
		}
		return o, nil
	case yaml.SequenceNode:
		arr := make(Array, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := FromYAML(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalarFromYAML(n)
	}
	return nil, fmt.Errorf("document: line %d: unsupported yaml node kind %d", n.Line, n.Kind)
}

func scalarFromYAML(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, err
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return Float64(f), nil
	default:
		return String(n.Value), nil
	}
}

// YAML wraps a Value so it can be a field of a yaml.v3-decoded struct.
type YAML struct {
	Value Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (y *YAML) UnmarshalYAML(n *yaml.Node) error {
	v, err := FromYAML(n)
	if err != nil {
		return err
	}
	y.Value = v
	return nil
}

// Object returns the wrapped value when it is an object.
func (y YAML) Object() (*Object, bool) {
	o, ok := y.Value.(*Object)
	return o, ok
}
