// Package lootgen builds loot-table documents for a game's data pack format
// and renders them into the exact JSON shape the game consumes.
//
// The root package holds the pieces every builder shares:
//
//   - Identifier: immutable "namespace:path" references.
//   - Context: the per-call rendering capability threaded through every
//     Serialize call. Builders never store it.
//   - Registry: maps live object references to their canonical Identifier.
//   - The error taxonomy (ErrNoContext, ErrLookup and typed errors).
//
// Builders live under loot/, the document tree under document/, and the
// pack-writer and pregeneration collaborators under pack/ and pregen/.
//
// Typical usage:
//
//	entry := loot.NewEntryOf(lootgen.MustParseIdentifier("minecraft:item")).
//		Name(lootgen.MustParseIdentifier("minecraft:iron_ingot")).
//		Condition(loot.NewCondition(lootgen.MustParseIdentifier("minecraft:survives_explosion")))
//	doc, err := entry.Serialize(lootgen.NewContext())
package lootgen
