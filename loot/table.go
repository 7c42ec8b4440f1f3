package loot

import (
	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
)

// Loot table types used by the game.
var (
	EmptyTableType   = lootgen.MustParseIdentifier("minecraft:empty")
	BlockTableType   = lootgen.MustParseIdentifier("minecraft:block")
	EntityTableType  = lootgen.MustParseIdentifier("minecraft:entity")
	ChestTableType   = lootgen.MustParseIdentifier("minecraft:chest")
	FishingTableType = lootgen.MustParseIdentifier("minecraft:fishing")
	GiftTableType    = lootgen.MustParseIdentifier("minecraft:gift")
)

// Pool draws rolls entries from its entry list.
type Pool struct {
	rolls      Range
	bonusRolls Range
	entries    []*Entry
	conditions []*Condition
	functions  []*Function
}

// NewPool returns a pool rolling once.
func NewPool() *Pool { return &Pool{rolls: ConstantRange(1)} }

func (p *Pool) Rolls(rolls Range) *Pool {
	p.rolls = rolls
	return p
}

// BonusRolls adds rolls per point of luck.
func (p *Pool) BonusRolls(rolls Range) *Pool {
	p.bonusRolls = rolls
	return p
}

func (p *Pool) Entry(e *Entry) *Pool {
	p.entries = append(p.entries, e)
	return p
}

func (p *Pool) Condition(c *Condition) *Pool {
	p.conditions = append(p.conditions, c)
	return p
}

func (p *Pool) Function(f *Function) *Pool {
	p.functions = append(p.functions, f)
	return p
}

// Clone returns a deep copy. Ranges are values and are shared.
func (p *Pool) Clone() *Pool {
	if p == nil {
		return nil
	}
	return &Pool{
		rolls:      p.rolls,
		bonusRolls: p.bonusRolls,
		entries:    cloneList(p.entries),
		conditions: cloneList(p.conditions),
		functions:  cloneList(p.functions),
	}
}

func (p *Pool) Serialize(ctx *lootgen.Context) (document.Value, error) {
	if ctx == nil {
		return nil, lootgen.ErrNoContext
	}
	if p == nil {
		return document.Null, nil
	}
	out := document.NewObject()
	rolls, err := ctx.Render(typedRange{r: p.rolls})
	if err != nil {
		return nil, err
	}
	out.Set("rolls", rolls)
	if p.bonusRolls != nil {
		bonus, err := ctx.Render(typedRange{r: p.bonusRolls})
		if err != nil {
			return nil, err
		}
		out.Set("bonus_rolls", bonus)
	}
	if err := setList(ctx, out, "entries", p.entries); err != nil {
		return nil, err
	}
	if err := setList(ctx, out, "conditions", p.conditions); err != nil {
		return nil, err
	}
	if err := setList(ctx, out, "functions", p.functions); err != nil {
		return nil, err
	}
	return out, nil
}

// Table is a complete loot table document.
type Table struct {
	kind      lootgen.Identifier
	pools     []*Pool
	functions []*Function
}

// NewTable returns an empty table of the given type. A zero kind leaves
// "type" out.
func NewTable(kind lootgen.Identifier) *Table { return &Table{kind: kind} }

// Kind returns the table type.
func (t *Table) Kind() lootgen.Identifier { return t.kind }

func (t *Table) Pool(p *Pool) *Table {
	t.pools = append(t.pools, p)
	return t
}

// Function adds a function applied to every item the table produces.
func (t *Table) Function(f *Function) *Table {
	t.functions = append(t.functions, f)
	return t
}

func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	return &Table{
		kind:      t.kind,
		pools:     cloneList(t.pools),
		functions: cloneList(t.functions),
	}
}

// Serialize renders "type", "pools" and "functions", omitting empty ones.
func (t *Table) Serialize(ctx *lootgen.Context) (document.Value, error) {
	if ctx == nil {
		return nil, lootgen.ErrNoContext
	}
	if t == nil {
		return document.Null, nil
	}
	out := document.NewObject()
	if !t.kind.IsZero() {
		out.Set("type", document.String(t.kind.String()))
	}
	if err := setList(ctx, out, "pools", t.pools); err != nil {
		return nil, err
	}
	if err := setList(ctx, out, "functions", t.functions); err != nil {
		return nil, err
	}
	return out, nil
}

func setList[T any](ctx *lootgen.Context, out *document.Object, field string, items []T) error {
	if len(items) == 0 {
		return nil
	}
	arr, err := renderList(ctx, field, items)
	if err != nil {
		return err
	}
	out.Set(field, arr)
	return nil
}
