package config_test

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
	"github.com/reoring/lootgen/internal/config"
	"github.com/reoring/lootgen/pack"
)

const rubyOre = `
output: build/pack
indent: "  "
workers: 2
log_level: debug
tables:
  - id: mod:blocks/ruby_ore
    type: minecraft:block
    pools:
      - rolls: 1
        bonus_rolls: {min: 0, max: 1}
        entries:
          - type: minecraft:alternatives
            children:
              - type: minecraft:item
                name: mod:ruby_ore
                conditions:
                  - condition: minecraft:match_tool
                    predicate:
                      enchantments:
                        - enchantment: minecraft:silk_touch
              - type: minecraft:item
                name: mod:ruby
                functions:
                  - function: minecraft:apply_bonus
                    enchantment: minecraft:fortune
                    formula: minecraft:ore_drops
                  - function: minecraft:explosion_decay
        conditions:
          - condition: minecraft:survives_explosion
`

func TestLoadFromReader_Tables(t *testing.T) {
	is := is.New(t)
	cfg, err := config.LoadFromReader(strings.NewReader(rubyOre))
	is.NoErr(err)
	is.Equal(cfg.Output, "build/pack")
	is.Equal(cfg.Format, pack.FormatJSON)
	is.Equal(cfg.Workers, 2)
	is.Equal(cfg.LogLevel, config.LogDebug)
	is.Equal(len(cfg.Tables), 1)
	is.Equal(cfg.Tables[0].ID, lootgen.MustParseIdentifier("mod:blocks/ruby_ore"))

	table, err := cfg.Tables[0].Build()
	is.NoErr(err)
	v, err := table.Serialize(lootgen.NewContext())
	is.NoErr(err)
	got, err := document.Marshal(v)
	is.NoErr(err)

	want := `{"type":"minecraft:block","pools":[{"rolls":1,"bonus_rolls":{"min":0,"max":1,"type":"minecraft:uniform"},` +
		`"entries":[{"type":"minecraft:alternatives","children":[` +
		`{"conditions":[{"condition":"minecraft:match_tool","predicate":{"enchantments":[{"enchantment":"minecraft:silk_touch"}]}}],"type":"minecraft:item","name":"mod:ruby_ore"},` +
		`{"functions":[{"function":"minecraft:apply_bonus","enchantment":"minecraft:fortune","formula":"minecraft:ore_drops"},{"function":"minecraft:explosion_decay"}],"type":"minecraft:item","name":"mod:ruby"}]}],` +
		`"conditions":[{"condition":"minecraft:survives_explosion","predicate":null}]}]}`
	is.Equal(string(got), want)
}

func TestLoadFromReader_Defaults(t *testing.T) {
	is := is.New(t)
	cfg, err := config.LoadFromReader(strings.NewReader(""))
	is.NoErr(err)
	is.Equal(cfg.Output, "out")
	is.Equal(cfg.Format, pack.FormatJSON)
	is.Equal(cfg.LogLevel, config.LogInfo)
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	is := is.New(t)
	_, err := config.LoadFromReader(strings.NewReader("outptu: x\n"))
	is.True(err != nil)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	is := is.New(t)
	yaml := `
format: xml
workers: -1
log_level: loud
tables:
  - id: mod:a
    pools:
      - rolls: 1
  - id: mod:a
  - type: minecraft:chest
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	is.True(err != nil)
	for _, want := range []string{
		`format "xml"`,
		"workers must be >= 0",
		`log_level "loud"`,
		"pools[0] has no entries",
		"duplicate id mod:a",
		"tables[2]: id is required",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestRangeDef(t *testing.T) {
	cases := []struct {
		name    string
		rolls   string
		want    string
		wantErr bool
	}{
		{name: "constant", rolls: "3", want: `3`},
		{name: "uniform", rolls: "{min: 1, max: 2.5}", want: `{"min":1,"max":2.5,"type":"minecraft:uniform"}`},
		{name: "binomial", rolls: "{n: 4, p: 0.25}", want: `{"n":4,"p":0.25,"type":"minecraft:binomial"}`},
		{name: "mixed", rolls: "{min: 1, p: 0.5}", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			src := "tables:\n  - id: mod:t\n    pools:\n      - rolls: " + tc.rolls + "\n        entries:\n          - type: minecraft:empty\n"
			cfg, err := config.LoadFromReader(strings.NewReader(src))
			if tc.wantErr {
				is.True(err != nil)
				return
			}
			is.NoErr(err)
			table, err := cfg.Tables[0].Build()
			is.NoErr(err)
			v, err := table.Serialize(lootgen.NewContext())
			is.NoErr(err)
			pools, _ := v.(*document.Object).Get("pools")
			rolls, _ := pools.(document.Array)[0].(*document.Object).Get("rolls")
			got, err := document.Marshal(rolls)
			is.NoErr(err)
			is.Equal(string(got), tc.want)
		})
	}
}

func TestBuild_EntryWithoutType(t *testing.T) {
	is := is.New(t)
	cfg, err := config.LoadFromReader(strings.NewReader("tables:\n  - id: mod:t\n    pools:\n      - entries:\n          - name: mod:x\n"))
	is.NoErr(err)
	_, err = cfg.Tables[0].Build()
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "pools[0]: entries[0]: entry without type"))
}

func TestFunctionDef_RequiresKind(t *testing.T) {
	is := is.New(t)
	src := "tables:\n  - id: mod:t\n    functions:\n      - count: 2\n"
	_, err := config.LoadFromReader(strings.NewReader(src))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), `missing "function"`))
}

func TestLogLevel(t *testing.T) {
	is := is.New(t)
	is.True(config.LogWarn.IsValid())
	is.True(!config.LogLevel("loud").IsValid())
	is.Equal(config.LogDebug.Level().String(), "DEBUG")
	is.Equal(config.LogLevel("").Level().String(), "INFO")
}
