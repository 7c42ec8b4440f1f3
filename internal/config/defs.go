package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
	"github.com/reoring/lootgen/loot"
)

// RangeDef is a number generator written as a bare integer (constant),
// {min, max} (uniform) or {n, p} (binomial).
type RangeDef struct {
	Range loot.Range
}

func (r *RangeDef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var c int
		if err := n.Decode(&c); err != nil {
			return fmt.Errorf("line %d: range: %w", n.Line, err)
		}
		r.Range = loot.ConstantRange(c)
		return nil
	}
	var raw struct {
		Min *float32 `yaml:"min"`
		Max *float32 `yaml:"max"`
		N   *int     `yaml:"n"`
		P   *float32 `yaml:"p"`
	}
	if err := n.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: range: %w", n.Line, err)
	}
	switch {
	case raw.Min != nil && raw.Max != nil && raw.N == nil && raw.P == nil:
		r.Range = loot.Uniform(*raw.Min, *raw.Max)
	case raw.N != nil && raw.P != nil && raw.Min == nil && raw.Max == nil:
		r.Range = loot.BinomialRange{N: *raw.N, P: *raw.P}
	default:
		return fmt.Errorf("line %d: range needs min and max, or n and p", n.Line)
	}
	return nil
}

func (c *ConditionDef) UnmarshalYAML(n *yaml.Node) error {
	obj, err := objectFromYAML(n, "condition")
	if err != nil {
		return err
	}
	def, err := conditionFromObject(obj)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = def
	return nil
}

func (f *FunctionDef) UnmarshalYAML(n *yaml.Node) error {
	obj, err := objectFromYAML(n, "function")
	if err != nil {
		return err
	}
	def, err := functionFromObject(obj)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*f = def
	return nil
}

func objectFromYAML(n *yaml.Node, what string) (*document.Object, error) {
	v, err := document.FromYAML(n)
	if err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", n.Line, what, err)
	}
	obj, ok := v.(*document.Object)
	if !ok {
		return nil, fmt.Errorf("line %d: %s must be a mapping", n.Line, what)
	}
	return obj, nil
}

// conditionFromObject splits a condition document into its kind, predicate
// and remaining parameters, which keep their order.
func conditionFromObject(obj *document.Object) (ConditionDef, error) {
	var def ConditionDef
	kind, err := kindOf(obj, "condition")
	if err != nil {
		return def, err
	}
	def.Kind = kind
	def.Params = document.NewObject()
	for k, v := range obj.All() {
		switch k {
		case "condition":
		case "predicate":
			def.Predicate = v
		default:
			def.Params.Set(k, v)
		}
	}
	return def, nil
}

func functionFromObject(obj *document.Object) (FunctionDef, error) {
	var def FunctionDef
	kind, err := kindOf(obj, "function")
	if err != nil {
		return def, err
	}
	def.Kind = kind
	def.Params = document.NewObject()
	for k, v := range obj.All() {
		switch k {
		case "function":
		case "conditions":
			arr, ok := v.(document.Array)
			if !ok {
				return def, fmt.Errorf("function %s: conditions must be a sequence", kind)
			}
			for i, el := range arr {
				co, ok := el.(*document.Object)
				if !ok {
					return def, fmt.Errorf("function %s: conditions[%d] must be a mapping", kind, i)
				}
				cd, err := conditionFromObject(co)
				if err != nil {
					return def, fmt.Errorf("function %s: conditions[%d]: %w", kind, i, err)
				}
				def.Conditions = append(def.Conditions, cd)
			}
		default:
			def.Params.Set(k, v)
		}
	}
	return def, nil
}

func kindOf(obj *document.Object, key string) (lootgen.Identifier, error) {
	v, ok := obj.Get(key)
	if !ok {
		return lootgen.Identifier{}, fmt.Errorf("missing %q", key)
	}
	s, ok := v.(document.String)
	if !ok {
		return lootgen.Identifier{}, fmt.Errorf("%q must be a string", key)
	}
	return lootgen.ParseIdentifier(string(s))
}
