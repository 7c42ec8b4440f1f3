package loot

import (
	"fmt"

	"github.com/google/uuid"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
)

// BlockPos is an integer block offset.
type BlockPos struct {
	X, Y, Z int
}

// Text is a chat component: either a literal string or a translation key
// with arguments, plus optional styling.
type Text struct {
	Literal   string
	Translate string
	With      []Text
	Color     string
	Bold      *bool
	Italic    *bool
}

// LiteralText returns a plain text component.
func LiteralText(s string) Text { return Text{Literal: s} }

// TranslatableText returns a component resolved from the language table.
func TranslatableText(key string, with ...Text) Text {
	return Text{Translate: key, With: with}
}

// WithColor returns a copy of t drawn in color (a named color or "#rrggbb").
func (t Text) WithColor(color string) Text {
	t.Color = color
	return t
}

func (t Text) WithBold(bold bool) Text {
	t.Bold = &bold
	return t
}

func (t Text) WithItalic(italic bool) Text {
	t.Italic = &italic
	return t
}

func (t Text) cloneAny() any {
	out := t
	out.Bold = clonePtr(t.Bold)
	out.Italic = clonePtr(t.Italic)
	if t.With != nil {
		out.With = make([]Text, len(t.With))
		for i, w := range t.With {
			out.With[i] = w.cloneAny().(Text)
		}
	}
	return out
}

// Serialize renders style keys first, then "translate" and "with" for a
// translatable component or "text" otherwise.
func (t Text) Serialize(ctx *lootgen.Context) (document.Value, error) {
	out := document.NewObject()
	if t.Bold != nil {
		out.Set("bold", document.Bool(*t.Bold))
	}
	if t.Italic != nil {
		out.Set("italic", document.Bool(*t.Italic))
	}
	if t.Color != "" {
		out.Set("color", document.String(t.Color))
	}
	if t.Translate == "" {
		out.Set("text", document.String(t.Literal))
		return out, nil
	}
	out.Set("translate", document.String(t.Translate))
	if len(t.With) > 0 {
		with, err := renderList(ctx, "with", t.With)
		if err != nil {
			return nil, err
		}
		out.Set("with", with)
	}
	return out, nil
}

// AttributeModifier describes one set_attributes modifier. Attribute is an
// Identifier or a reference known to the attribute resolver. A single slot
// is written as a scalar, several as an array.
type AttributeModifier struct {
	Name      string
	Attribute any
	Operation AttributeOperation
	Amount    UniformRange
	ID        *uuid.UUID
	Slots     []EquipmentSlot
}

type resolvedModifier struct {
	name      string
	attribute lootgen.Identifier
	operation AttributeOperation
	amount    UniformRange
	id        *uuid.UUID
	slots     []EquipmentSlot
}

func (m resolvedModifier) cloneAny() any {
	out := m
	out.id = clonePtr(m.id)
	out.slots = append([]EquipmentSlot(nil), m.slots...)
	return out
}

func (m resolvedModifier) Serialize(ctx *lootgen.Context) (document.Value, error) {
	out := document.NewObject()
	out.Set("name", document.String(m.name))
	out.Set("attribute", document.String(m.attribute.String()))
	op, err := ctx.Render(m.operation)
	if err != nil {
		return nil, fmt.Errorf("operation: %w", err)
	}
	out.Set("operation", op)
	amount, err := ctx.Render(m.amount)
	if err != nil {
		return nil, err
	}
	out.Set("amount", amount)
	if m.id != nil {
		out.Set("id", document.String(m.id.String()))
	}
	if len(m.slots) == 1 {
		slot, err := ctx.Render(m.slots[0])
		if err != nil {
			return nil, fmt.Errorf("slot: %w", err)
		}
		out.Set("slot", slot)
		return out, nil
	}
	slots, err := renderList(ctx, "slot", m.slots)
	if err != nil {
		return nil, err
	}
	out.Set("slot", slots)
	return out, nil
}

// StewEffect is one effect of set_stew_effect. Effect is an Identifier or a
// reference known to the status effect resolver.
type StewEffect struct {
	Effect   any
	Duration UniformRange
}

type resolvedStewEffect struct {
	effect   lootgen.Identifier
	duration UniformRange
}

func (s resolvedStewEffect) Serialize(ctx *lootgen.Context) (document.Value, error) {
	duration, err := ctx.Render(s.duration)
	if err != nil {
		return nil, err
	}
	return document.NewObject().
		Set("type", document.String(s.effect.String())).
		Set("duration", duration), nil
}

// CopyNbtOperation copies the NBT at Source into Target on the item.
type CopyNbtOperation struct {
	Source string
	Target string
	Op     NbtOperator
}

func (o CopyNbtOperation) Serialize(ctx *lootgen.Context) (document.Value, error) {
	op, err := ctx.Render(o.Op)
	if err != nil {
		return nil, fmt.Errorf("op: %w", err)
	}
	return document.NewObject().
		Set("source", document.String(o.Source)).
		Set("target", document.String(o.Target)).
		Set("op", op), nil
}

// Formula is an apply_bonus formula with its parameters.
type Formula struct {
	id     lootgen.Identifier
	params *document.Object
}

// OreDrops is the fortune formula for ores. It takes no parameters.
func OreDrops() Formula {
	return Formula{id: lootgen.MustParseIdentifier("minecraft:ore_drops")}
}

func UniformBonusCount(bonusMultiplier int) Formula {
	return Formula{
		id:     lootgen.MustParseIdentifier("minecraft:uniform_bonus_count"),
		params: document.NewObject().Set("bonusMultiplier", document.Int(int64(bonusMultiplier))),
	}
}

func BinomialWithBonusCount(extra int, probability float32) Formula {
	return Formula{
		id: lootgen.MustParseIdentifier("minecraft:binomial_with_bonus_count"),
		params: document.NewObject().
			Set("extra", document.Int(int64(extra))).
			Set("probability", document.Float32(probability)),
	}
}

// ID returns the formula identifier.
func (f Formula) ID() lootgen.Identifier { return f.id }
