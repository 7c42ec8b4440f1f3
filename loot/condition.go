package loot

import (
	"maps"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
)

// Condition is a named predicate ("condition" on the wire). Parameters are
// flattened into the condition object; the nested predicate payload is
// emitted under "predicate".
type Condition struct {
	kind       lootgen.Identifier
	parameters *bag
	predicate  document.Value
}

// NewCondition returns a condition of the given kind.
func NewCondition(kind lootgen.Identifier) *Condition {
	return &Condition{kind: kind}
}

// ParseCondition parses kind and delegates to NewCondition.
//
// Deprecated: use NewCondition with a parsed Identifier.
func ParseCondition(kind string) (*Condition, error) {
	id, err := lootgen.ParseIdentifier(kind)
	if err != nil {
		return nil, err
	}
	return NewCondition(id), nil
}

// Kind returns the condition type.
func (c *Condition) Kind() lootgen.Identifier { return c.kind }

// Parameter stores an arbitrary parameter. value is rendered through the
// Context when the condition is serialized.
func (c *Condition) Parameter(key string, value any) *Condition {
	if c.parameters == nil {
		c.parameters = newBag()
	}
	c.parameters.set(key, value)
	return c
}

// Alternative passes when any of terms passes.
func (c *Condition) Alternative(terms ...*Condition) *Condition {
	return c.Parameter("terms", append([]*Condition{}, terms...))
}

// BlockStateProperties matches the broken block and its state. properties is
// an already rendered state predicate.
func (c *Condition) BlockStateProperties(block lootgen.Identifier, properties document.Value) *Condition {
	c.Parameter("block", block)
	return c.Parameter("properties", document.Clone(properties))
}

// DamageSourceProperties stores a rendered damage source predicate as the
// "predicate" parameter.
func (c *Condition) DamageSourceProperties(predicate document.Value) *Condition {
	return c.Parameter("predicate", document.Clone(predicate))
}

// DamageSource is an alias of DamageSourceProperties.
func (c *Condition) DamageSource(predicate document.Value) *Condition {
	return c.DamageSourceProperties(predicate)
}

// Inverted negates term.
func (c *Condition) Inverted(term *Condition) *Condition {
	return c.Parameter("term", term)
}

// KilledByPlayer takes no parameters.
func (c *Condition) KilledByPlayer() *Condition { return c }

func (c *Condition) RandomChance(chance float32) *Condition {
	return c.Parameter("chance", chance)
}

func (c *Condition) RandomChanceWithLooting(chance, lootingMultiplier float32) *Condition {
	c.Parameter("chance", chance)
	return c.Parameter("looting_multiplier", lootingMultiplier)
}

// Reference points at a predicate file by name.
func (c *Condition) Reference(name lootgen.Identifier) *Condition {
	return c.Parameter("name", name)
}

func (c *Condition) TableBonus(enchantment lootgen.Identifier, chances ...float32) *Condition {
	c.Parameter("enchantment", enchantment)
	return c.Parameter("chances", append([]float32{}, chances...))
}

func (c *Condition) TimeCheck(period int64, value UniformRange) *Condition {
	c.Parameter("period", period)
	return c.Parameter("value", value)
}

func (c *Condition) WeatherCheck(raining, thundering bool) *Condition {
	c.Parameter("raining", raining)
	return c.Parameter("thundering", thundering)
}

// EntityScores matches scoreboard values of target. Scores are emitted with
// sorted objective names.
func (c *Condition) EntityScores(scores map[string]UniformRange, target EntityTarget) *Condition {
	c.Parameter("scores", maps.Clone(scores))
	return c.Parameter("entity", target)
}

// MatchTool sets the rendered item predicate.
func (c *Condition) MatchTool(predicate document.Value) *Condition {
	c.predicate = document.Clone(predicate)
	return c
}

// LocationCheck sets the rendered location predicate. Offset components are
// emitted only when non-zero.
func (c *Condition) LocationCheck(predicate document.Value, offset BlockPos) *Condition {
	c.predicate = document.Clone(predicate)
	if c.parameters == nil {
		c.parameters = newBag()
	}
	if offset.X != 0 {
		c.Parameter("offsetX", offset.X)
	}
	if offset.Y != 0 {
		c.Parameter("offsetY", offset.Y)
	}
	if offset.Z != 0 {
		c.Parameter("offsetZ", offset.Z)
	}
	return c
}

// Clone returns a deep copy that shares no mutable state with c.
func (c *Condition) Clone() *Condition {
	if c == nil {
		return nil
	}
	return &Condition{
		kind:       c.kind,
		parameters: c.parameters.clone(),
		predicate:  document.Clone(c.predicate),
	}
}

func (c *Condition) cloneAny() any { return c.Clone() }

// Serialize renders the condition. "predicate" is always present and holds
// null when no predicate was set, unless a parameter already wrote it.
func (c *Condition) Serialize(ctx *lootgen.Context) (document.Value, error) {
	if ctx == nil {
		return nil, lootgen.ErrNoContext
	}
	if c == nil {
		return document.Null, nil
	}
	out := document.NewObject()
	kind, err := ctx.Render(c.kind)
	if err != nil {
		return nil, err
	}
	out.Set("condition", kind)
	params, err := c.parameters.render(ctx)
	if err != nil {
		return nil, err
	}
	out.Merge(params)
	switch {
	case c.predicate != nil:
		out.Set("predicate", document.Clone(c.predicate))
	case !out.Has("predicate"):
		out.Set("predicate", document.Null)
	}
	return out, nil
}
