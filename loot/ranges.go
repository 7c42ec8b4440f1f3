package loot

import (
	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
)

// Range types understood by the game. Object-shaped ranges written through
// a typed slot (count, levels, rolls) carry their type id.
var (
	ConstantRangeType = lootgen.MustParseIdentifier("minecraft:constant")
	UniformRangeType  = lootgen.MustParseIdentifier("minecraft:uniform")
	BinomialRangeType = lootgen.MustParseIdentifier("minecraft:binomial")
)

// Range is a number generator: constant, uniform or binomial.
type Range interface {
	lootgen.Serializer
	RangeType() lootgen.Identifier
}

// ConstantRange always yields the same count. It renders as a bare number.
type ConstantRange int

func (ConstantRange) RangeType() lootgen.Identifier { return ConstantRangeType }

func (r ConstantRange) Serialize(*lootgen.Context) (document.Value, error) {
	return document.Int(int64(r)), nil
}

// UniformRange yields a value between Min and Max inclusive.
type UniformRange struct {
	Min float32
	Max float32
}

// Uniform returns the range [min, max].
func Uniform(min, max float32) UniformRange { return UniformRange{Min: min, Max: max} }

func (UniformRange) RangeType() lootgen.Identifier { return UniformRangeType }

func (r UniformRange) Serialize(*lootgen.Context) (document.Value, error) {
	return document.NewObject().
		Set("min", document.Float32(r.Min)).
		Set("max", document.Float32(r.Max)), nil
}

// BinomialRange yields the number of successes of N trials with chance P.
type BinomialRange struct {
	N int
	P float32
}

func (BinomialRange) RangeType() lootgen.Identifier { return BinomialRangeType }

func (r BinomialRange) Serialize(*lootgen.Context) (document.Value, error) {
	return document.NewObject().
		Set("n", document.Int(int64(r.N))).
		Set("p", document.Float32(r.P)), nil
}

// typedRange renders its range and appends "type" when the result is an
// object.
type typedRange struct {
	r Range
}

func (t typedRange) Serialize(ctx *lootgen.Context) (document.Value, error) {
	v, err := ctx.Render(t.r)
	if err != nil {
		return nil, err
	}
	if obj, ok := v.(*document.Object); ok {
		obj.Set("type", document.String(t.r.RangeType().String()))
	}
	return v, nil
}

// BoundedInt clamps a count. A nil bound is open.
type BoundedInt struct {
	Min *int
	Max *int
}

// Exactly bounds both ends at n.
func Exactly(n int) BoundedInt { return BoundedInt{Min: &n, Max: &n} }

func AtLeast(n int) BoundedInt { return BoundedInt{Min: &n} }

func AtMost(n int) BoundedInt { return BoundedInt{Max: &n} }

func Between(min, max int) BoundedInt { return BoundedInt{Min: &min, Max: &max} }

func (b BoundedInt) cloneAny() any {
	return BoundedInt{Min: clonePtr(b.Min), Max: clonePtr(b.Max)}
}

// Serialize renders a bare number when both bounds are equal, otherwise an
// object holding the bounds that are set.
func (b BoundedInt) Serialize(*lootgen.Context) (document.Value, error) {
	if b.Min != nil && b.Max != nil && *b.Min == *b.Max {
		return document.Int(int64(*b.Min)), nil
	}
	out := document.NewObject()
	if b.Min != nil {
		out.Set("min", document.Int(int64(*b.Min)))
	}
	if b.Max != nil {
		out.Set("max", document.Int(int64(*b.Max)))
	}
	return out, nil
}
