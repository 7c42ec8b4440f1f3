package loot

import (
	"fmt"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
)

// Exploration map defaults. Arguments equal to these are left out of the
// document.
const (
	DefaultDestination  = "buried_treasure"
	DefaultDecoration   = DecorationMansion
	DefaultZoom         = int8(2)
	DefaultSearchRadius = 50
)

// Function is an item modifier ("function" on the wire). Every mutator
// writes into an ordered property bag that is merged into the function
// object when it is serialized. Later writes to the same key win.
type Function struct {
	kind       lootgen.Identifier
	properties *bag
	conditions []*Condition
}

// NewFunction returns a function of the given kind.
func NewFunction(kind lootgen.Identifier) *Function {
	return &Function{kind: kind, properties: newBag()}
}

// ParseFunction parses kind and delegates to NewFunction.
//
// Deprecated: use NewFunction with a parsed Identifier.
func ParseFunction(kind string) (*Function, error) {
	id, err := lootgen.ParseIdentifier(kind)
	if err != nil {
		return nil, err
	}
	return NewFunction(id), nil
}

// Kind returns the function type.
func (f *Function) Kind() lootgen.Identifier { return f.kind }

// Set stores value under key. value is rendered through the Context when the
// function is serialized.
func (f *Function) Set(key string, value any) *Function {
	if f.properties == nil {
		f.properties = newBag()
	}
	f.properties.set(key, value)
	return f
}

// AddString stores the string form of property under key.
//
// Deprecated: use Set.
func (f *Function) AddString(key string, property any) *Function {
	return f.Set(key, fmt.Sprint(property))
}

// Property returns the unrendered value stored under key.
func (f *Function) Property(key string) (any, bool) {
	return f.properties.get(key)
}

func (f *Function) SetCount(count Range) *Function {
	return f.Set("count", typedRange{r: count})
}

func (f *Function) EnchantWithLevels(levels Range, treasure bool) *Function {
	f.Set("levels", typedRange{r: levels})
	return f.Set("treasure", treasure)
}

// EnchantRandomly limits the random pick to enchantments. Each reference is
// resolved through r; with no enchantments every applicable one is allowed
// and no key is written.
func (f *Function) EnchantRandomly(r lootgen.Resolver, enchantments ...any) (*Function, error) {
	if len(enchantments) == 0 {
		return f, nil
	}
	ids, err := resolveAll(r, enchantments)
	if err != nil {
		return f, err
	}
	return f.Set("enchantments", ids), nil
}

// SetNbt merges an SNBT compound into the item tag.
func (f *Function) SetNbt(snbt string) *Function {
	return f.Set("tag", snbt)
}

// LootingEnchant adds count per looting level. limit caps the result and is
// written only when positive.
func (f *Function) LootingEnchant(count UniformRange, limit int) *Function {
	f.Set("count", count)
	if limit > 0 {
		f.Set("limit", limit)
	}
	return f
}

func (f *Function) SetDamage(damage UniformRange) *Function {
	return f.Set("damage", damage)
}

// SetAttributes adds attribute modifiers. Every modifier attribute is
// resolved through r before anything is written.
func (f *Function) SetAttributes(r lootgen.Resolver, modifiers ...AttributeModifier) (*Function, error) {
	resolved := make([]resolvedModifier, 0, len(modifiers))
	for _, m := range modifiers {
		id, err := lootgen.Resolve(r, m.Attribute)
		if err != nil {
			return f, err
		}
		resolved = append(resolved, resolvedModifier{
			name:      m.Name,
			attribute: id,
			operation: m.Operation,
			amount:    m.Amount,
			id:        clonePtr(m.ID),
			slots:     append([]EquipmentSlot(nil), m.Slots...),
		})
	}
	return f.Set("modifiers", resolved), nil
}

// SetName sets the item display name. A nil name leaves "name" out and a
// zero entity leaves "entity" out.
func (f *Function) SetName(name *Text, entity EntityTarget) *Function {
	if name != nil {
		f.Set("name", name.cloneAny())
	}
	if entity != 0 {
		f.Set("entity", entity)
	}
	return f
}

// ExplorationMap turns an empty map into an explorer map. Arguments equal to
// the defaults are not written; an empty destination and a zero decoration
// also select the default.
func (f *Function) ExplorationMap(destination string, decoration MapDecoration, zoom int8, searchRadius int, skipExisting bool) *Function {
	if destination != "" && destination != DefaultDestination {
		f.Set("destination", destination)
	}
	if decoration != 0 && decoration != DefaultDecoration {
		f.Set("decoration", decoration)
	}
	if zoom != DefaultZoom {
		f.Set("zoom", zoom)
	}
	if searchRadius != DefaultSearchRadius {
		f.Set("search_radius", searchRadius)
	}
	if !skipExisting {
		f.Set("skip_existing_chunks", false)
	}
	return f
}

// SetStewEffect sets suspicious stew effects. Every effect is resolved
// through r before anything is written; with no effects no key is written.
func (f *Function) SetStewEffect(r lootgen.Resolver, effects ...StewEffect) (*Function, error) {
	if len(effects) == 0 {
		return f, nil
	}
	resolved := make([]resolvedStewEffect, 0, len(effects))
	for _, e := range effects {
		id, err := lootgen.Resolve(r, e.Effect)
		if err != nil {
			return f, err
		}
		resolved = append(resolved, resolvedStewEffect{effect: id, duration: e.Duration})
	}
	return f.Set("effects", resolved), nil
}

func (f *Function) CopyName(source CopySource) *Function {
	return f.Set("source", source)
}

// SetContents fills a container item with entries.
func (f *Function) SetContents(entries ...*Entry) *Function {
	return f.Set("entries", append([]*Entry{}, entries...))
}

func (f *Function) LimitCount(limit BoundedInt) *Function {
	return f.Set("limit", limit)
}

// ApplyBonus scales the count by the level of enchantment, resolved through
// r, using formula.
func (f *Function) ApplyBonus(r lootgen.Resolver, enchantment any, formula Formula) (*Function, error) {
	id, err := lootgen.Resolve(r, enchantment)
	if err != nil {
		return f, err
	}
	f.Set("enchantment", id)
	f.Set("formula", formula.id)
	if formula.params != nil && formula.params.Len() > 0 {
		f.Set("parameters", document.Clone(formula.params))
	}
	return f, nil
}

// SetLootTable makes a container drop the contents of table. A zero seed
// leaves "seed" out.
func (f *Function) SetLootTable(table lootgen.Identifier, seed int64) *Function {
	f.Set("name", table)
	if seed != 0 {
		f.Set("seed", seed)
	}
	return f
}

// AddLore appends (or with replace, substitutes) lore lines, resolving
// entity-dependent components against entity.
func (f *Function) AddLore(replace bool, lore []Text, entity EntityTarget) *Function {
	f.Set("replace", replace)
	f.Set("lore", cloneValue(append([]Text{}, lore...)))
	if entity != 0 {
		f.Set("entity", entity)
	}
	return f
}

func (f *Function) FillPlayerHead(entity EntityTarget) *Function {
	return f.Set("entity", entity)
}

func (f *Function) CopyNbt(source CopySource, ops ...CopyNbtOperation) *Function {
	f.Set("source", source)
	return f.Set("ops", append([]CopyNbtOperation{}, ops...))
}

// CopyState copies block state properties of block, resolved through r,
// onto the item.
func (f *Function) CopyState(r lootgen.Resolver, block any, properties ...string) (*Function, error) {
	id, err := lootgen.Resolve(r, block)
	if err != nil {
		return f, err
	}
	f.Set("block", id)
	return f.Set("properties", append([]string{}, properties...)), nil
}

func (f *Function) Condition(c *Condition) *Function {
	f.conditions = append(f.conditions, c)
	return f
}

// AddCondition appends c.
//
// Deprecated: use Condition.
func (f *Function) AddCondition(c *Condition) *Function {
	return f.Condition(c)
}

// Clone returns a deep copy that shares no mutable state with f.
func (f *Function) Clone() *Function {
	if f == nil {
		return nil
	}
	return &Function{
		kind:       f.kind,
		properties: f.properties.clone(),
		conditions: cloneList(f.conditions),
	}
}

func (f *Function) cloneAny() any { return f.Clone() }

// Serialize renders "function", then "conditions" when any were added, then
// every property in insertion order.
func (f *Function) Serialize(ctx *lootgen.Context) (document.Value, error) {
	if ctx == nil {
		return nil, lootgen.ErrNoContext
	}
	if f == nil {
		return document.Null, nil
	}
	out := document.NewObject()
	kind, err := ctx.Render(f.kind)
	if err != nil {
		return nil, err
	}
	out.Set("function", kind)
	if f.conditions != nil {
		arr, err := renderList(ctx, "conditions", f.conditions)
		if err != nil {
			return nil, err
		}
		out.Set("conditions", arr)
	}
	params, err := f.properties.render(ctx)
	if err != nil {
		return nil, err
	}
	out.Merge(params)
	return out, nil
}

func resolveAll(r lootgen.Resolver, refs []any) ([]lootgen.Identifier, error) {
	out := make([]lootgen.Identifier, 0, len(refs))
	for _, ref := range refs {
		id, err := lootgen.Resolve(r, ref)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
