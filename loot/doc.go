// Package loot builds loot-table documents: conditions, entries, functions,
// pools and tables, plus the value records they carry.
//
// Builders are plain mutable values. Mutators store their arguments and
// return the receiver for chaining; nothing is rendered until Serialize is
// called with a *lootgen.Context:
//
//	ctx := lootgen.NewContext()
//	entry := loot.NewEntryOf(loot.ItemEntryType).
//		Name(lootgen.MustParseIdentifier("minecraft:iron_ingot")).
//		Function(loot.NewFunction(setCount).SetCount(loot.Uniform(1, 3)))
//	doc, err := entry.Serialize(ctx)
//
// Mutators that name registry objects (enchantments, attributes, status
// effects, blocks) take a lootgen.Resolver and return an error when a
// reference has no name. In that case the builder is left unchanged.
//
// Builders are not synchronized. Distinct trees may be serialized
// concurrently, also with a shared Context.
package loot
