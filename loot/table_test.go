package loot

import "testing"

func TestTable_Serialize(t *testing.T) {
	table := NewTable(BlockTableType).
		Pool(NewPool().
			BonusRolls(BinomialRange{N: 2, P: 0.5}).
			Entry(NewEntryOf(ItemEntryType).Name(id("stone"))).
			Condition(NewCondition(id("survives_explosion")))).
		Function(NewFunction(id("explosion_decay")))

	want := `{"type":"minecraft:block","pools":[{"rolls":1,"bonus_rolls":{"n":2,"p":0.5,"type":"minecraft:binomial"},` +
		`"entries":[{"type":"minecraft:item","name":"minecraft:stone"}],` +
		`"conditions":[{"condition":"minecraft:survives_explosion","predicate":null}]}],` +
		`"functions":[{"function":"minecraft:explosion_decay"}]}`
	if got := mustJSON(t, table); got != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", got, want)
	}
}

func TestTable_EmptyOmitsLists(t *testing.T) {
	if got := mustJSON(t, NewTable(EmptyTableType)); got != `{"type":"minecraft:empty"}` {
		t.Fatalf("unexpected json: %s", got)
	}
	if got := mustJSON(t, NewPool().Rolls(Uniform(1, 2))); got != `{"rolls":{"min":1,"max":2,"type":"minecraft:uniform"}}` {
		t.Fatalf("unexpected json: %s", got)
	}
}

func TestTable_CloneIsIndependent(t *testing.T) {
	pool := NewPool().Entry(NewEntryOf(ItemEntryType).Name(id("apple")))
	orig := NewTable(ChestTableType).Pool(pool)
	cp := orig.Clone()
	before := mustJSON(t, cp)

	pool.Rolls(ConstantRange(3)).Entry(NewEntryOf(ItemEntryType))
	orig.Function(NewFunction(id("explosion_decay")))

	if after := mustJSON(t, cp); after != before {
		t.Fatalf("clone changed:\nbefore %s\n after %s", before, after)
	}
}
