package loot

import (
	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
)

// ItemEntryType is the entry type used by ChildString.
var ItemEntryType = lootgen.MustParseIdentifier("minecraft:item")

// Entry is one pool entry. Composite entry types (alternatives, sequence,
// group) nest further entries under children to any depth.
type Entry struct {
	conditions []*Condition
	functions  []*Function
	kind       lootgen.Identifier
	name       lootgen.Identifier
	children   []*Entry
	expand     *bool
	weight     *int
	quality    *int
}

// NewEntry returns an entry whose type is set later with Type.
func NewEntry() *Entry { return &Entry{} }

// NewEntryOf returns an entry of the given type.
func NewEntryOf(kind lootgen.Identifier) *Entry { return &Entry{kind: kind} }

// Type sets the entry type.
func (e *Entry) Type(kind lootgen.Identifier) *Entry {
	e.kind = kind
	return e
}

// TypeString parses kind and delegates to Type.
//
// Deprecated: use NewEntryOf or Type with a parsed Identifier.
func (e *Entry) TypeString(kind string) (*Entry, error) {
	id, err := lootgen.ParseIdentifier(kind)
	if err != nil {
		return e, err
	}
	return e.Type(id), nil
}

// Name sets the referenced item, table or tag.
func (e *Entry) Name(name lootgen.Identifier) *Entry {
	e.name = name
	return e
}

// NameString parses name and delegates to Name.
//
// Deprecated: use Name with a parsed Identifier.
func (e *Entry) NameString(name string) (*Entry, error) {
	id, err := lootgen.ParseIdentifier(name)
	if err != nil {
		return e, err
	}
	return e.Name(id), nil
}

func (e *Entry) Condition(c *Condition) *Entry {
	e.conditions = append(e.conditions, c)
	return e
}

func (e *Entry) Function(f *Function) *Entry {
	e.functions = append(e.functions, f)
	return e
}

// Child appends a nested entry.
func (e *Entry) Child(child *Entry) *Entry {
	e.children = append(e.children, child)
	return e
}

// ChildString appends an item entry naming the given item.
//
// Deprecated: use Child with an entry built by NewEntryOf(ItemEntryType).
func (e *Entry) ChildString(name string) (*Entry, error) {
	id, err := lootgen.ParseIdentifier(name)
	if err != nil {
		return e, err
	}
	return e.Child(NewEntryOf(ItemEntryType).Name(id)), nil
}

func (e *Entry) Expand(expand bool) *Entry {
	e.expand = &expand
	return e
}

func (e *Entry) Weight(weight int) *Entry {
	e.weight = &weight
	return e
}

func (e *Entry) Quality(quality int) *Entry {
	e.quality = &quality
	return e
}

// Clone returns a deep copy: conditions, functions and children are cloned
// recursively, identifiers are shared.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	return &Entry{
		conditions: cloneList(e.conditions),
		functions:  cloneList(e.functions),
		kind:       e.kind,
		name:       e.name,
		children:   cloneList(e.children),
		expand:     clonePtr(e.expand),
		weight:     clonePtr(e.weight),
		quality:    clonePtr(e.quality),
	}
}

func (e *Entry) cloneAny() any { return e.Clone() }

// Serialize renders the entry. Keys appear in a fixed order and only when
// set: conditions, functions, type, name, children, expand, weight, quality.
func (e *Entry) Serialize(ctx *lootgen.Context) (document.Value, error) {
	if ctx == nil {
		return nil, lootgen.ErrNoContext
	}
	if e == nil {
		return document.Null, nil
	}
	out := document.NewObject()
	if e.conditions != nil {
		arr, err := renderList(ctx, "conditions", e.conditions)
		if err != nil {
			return nil, err
		}
		out.Set("conditions", arr)
	}
	if e.functions != nil {
		arr, err := renderList(ctx, "functions", e.functions)
		if err != nil {
			return nil, err
		}
		out.Set("functions", arr)
	}
	if !e.kind.IsZero() {
		out.Set("type", document.String(e.kind.String()))
	}
	if !e.name.IsZero() {
		out.Set("name", document.String(e.name.String()))
	}
	if e.children != nil {
		arr, err := renderList(ctx, "children", e.children)
		if err != nil {
			return nil, err
		}
		out.Set("children", arr)
	}
	if e.expand != nil {
		out.Set("expand", document.Bool(*e.expand))
	}
	if e.weight != nil {
		out.Set("weight", document.Int(int64(*e.weight)))
	}
	if e.quality != nil {
		out.Set("quality", document.Int(int64(*e.quality)))
	}
	return out, nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
