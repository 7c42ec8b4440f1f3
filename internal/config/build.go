package config

import (
	"fmt"

	"github.com/reoring/lootgen/loot"
)

// Build converts the definition into a loot table. Raw parameters are
// inserted through the low-level Parameter and Set escape hatches in the
// order they were written.
func (t TableDef) Build() (*loot.Table, error) {
	table := loot.NewTable(t.Type)
	for i, p := range t.Pools {
		pool, err := p.build()
		if err != nil {
			return nil, fmt.Errorf("table %s: pools[%d]: %w", t.ID, i, err)
		}
		table.Pool(pool)
	}
	for _, f := range t.Functions {
		table.Function(f.build())
	}
	return table, nil
}

func (p PoolDef) build() (*loot.Pool, error) {
	pool := loot.NewPool()
	if p.Rolls != nil {
		pool.Rolls(p.Rolls.Range)
	}
	if p.BonusRolls != nil {
		pool.BonusRolls(p.BonusRolls.Range)
	}
	for i, e := range p.Entries {
		entry, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("entries[%d]: %w", i, err)
		}
		pool.Entry(entry)
	}
	for _, c := range p.Conditions {
		pool.Condition(c.build())
	}
	for _, f := range p.Functions {
		pool.Function(f.build())
	}
	return pool, nil
}

func (e EntryDef) build() (*loot.Entry, error) {
	if e.Type.IsZero() {
		return nil, fmt.Errorf("entry without type")
	}
	entry := loot.NewEntryOf(e.Type)
	for _, c := range e.Conditions {
		entry.Condition(c.build())
	}
	for _, f := range e.Functions {
		entry.Function(f.build())
	}
	if !e.Name.IsZero() {
		entry.Name(e.Name)
	}
	for i, child := range e.Children {
		built, err := child.build()
		if err != nil {
			return nil, fmt.Errorf("children[%d]: %w", i, err)
		}
		entry.Child(built)
	}
	if e.Expand != nil {
		entry.Expand(*e.Expand)
	}
	if e.Weight != nil {
		entry.Weight(*e.Weight)
	}
	if e.Quality != nil {
		entry.Quality(*e.Quality)
	}
	return entry, nil
}

func (c ConditionDef) build() *loot.Condition {
	cond := loot.NewCondition(c.Kind)
	if c.Params != nil {
		for k, v := range c.Params.All() {
			cond.Parameter(k, v)
		}
	}
	if c.Predicate != nil {
		cond.Parameter("predicate", c.Predicate)
	}
	return cond
}

func (f FunctionDef) build() *loot.Function {
	fn := loot.NewFunction(f.Kind)
	for _, c := range f.Conditions {
		fn.Condition(c.build())
	}
	if f.Params != nil {
		for k, v := range f.Params.All() {
			fn.Set(k, v)
		}
	}
	return fn
}
