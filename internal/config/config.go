// Package config loads the lootgen CLI configuration: output settings and
// declarative loot table definitions.
package config

import (
	"log/slog"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
	"github.com/reoring/lootgen/pack"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l to a slog level. Unknown and empty levels map to info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Config is the top-level configuration file.
type Config struct {
	// Output is the pack root directory.
	Output string `yaml:"output"`

	// Format is the file encoding, json (default) or yaml.
	Format pack.Format `yaml:"format"`

	// Indent pretty-prints JSON output. Empty writes compact JSON.
	Indent string `yaml:"indent"`

	// Workers bounds concurrent table generation. Zero uses GOMAXPROCS.
	Workers int `yaml:"workers"`

	LogLevel LogLevel `yaml:"log_level"`

	Tables []TableDef `yaml:"tables"`
}

// TableDef declares one loot table.
type TableDef struct {
	ID        lootgen.Identifier `yaml:"id"`
	Type      lootgen.Identifier `yaml:"type"`
	Pools     []PoolDef          `yaml:"pools"`
	Functions []FunctionDef      `yaml:"functions"`
}

// PoolDef declares one pool. Rolls defaults to a single roll.
type PoolDef struct {
	Rolls      *RangeDef      `yaml:"rolls"`
	BonusRolls *RangeDef      `yaml:"bonus_rolls"`
	Entries    []EntryDef     `yaml:"entries"`
	Conditions []ConditionDef `yaml:"conditions"`
	Functions  []FunctionDef  `yaml:"functions"`
}

// EntryDef declares an entry. Composite entries nest Children.
type EntryDef struct {
	Type       lootgen.Identifier `yaml:"type"`
	Name       lootgen.Identifier `yaml:"name"`
	Weight     *int               `yaml:"weight"`
	Quality    *int               `yaml:"quality"`
	Expand     *bool              `yaml:"expand"`
	Children   []EntryDef         `yaml:"children"`
	Conditions []ConditionDef     `yaml:"conditions"`
	Functions  []FunctionDef      `yaml:"functions"`
}

// ConditionDef is written the way the condition appears in a loot table:
// a "condition" key, optional "predicate" and any other parameters inline.
type ConditionDef struct {
	Kind      lootgen.Identifier
	Params    *document.Object
	Predicate document.Value
}

// FunctionDef is written the way the function appears in a loot table: a
// "function" key, optional "conditions" and any other properties inline.
type FunctionDef struct {
	Kind       lootgen.Identifier
	Params     *document.Object
	Conditions []ConditionDef
}
