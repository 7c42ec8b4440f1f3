package pack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
	"github.com/reoring/lootgen/loot"
)

func ruby() *loot.Table {
	return loot.NewTable(loot.BlockTableType).Pool(loot.NewPool().
		Entry(loot.NewEntryOf(loot.ItemEntryType).Name(lootgen.MustParseIdentifier("mod:ruby"))))
}

func TestLootTablePath(t *testing.T) {
	is := is.New(t)
	id := lootgen.MustParseIdentifier("mod:blocks/ruby_ore")
	is.Equal(LootTablePath(id, FormatJSON), "data/mod/loot_tables/blocks/ruby_ore.json")
	is.Equal(LootTablePath(id, FormatYAML), "data/mod/loot_tables/blocks/ruby_ore.yaml")
}

func TestAddLootTable_Memory(t *testing.T) {
	is := is.New(t)
	mem := NewMemory()

	p, err := AddLootTable(mem, lootgen.MustParseIdentifier("mod:blocks/ruby_ore"), ruby())
	is.NoErr(err)
	is.Equal(p, "data/mod/loot_tables/blocks/ruby_ore.json")

	data, ok := mem.Get(p)
	is.True(ok)
	is.Equal(string(data), `{"type":"minecraft:block","pools":[{"rolls":1,"entries":[{"type":"minecraft:item","name":"mod:ruby"}]}]}`)
	is.Equal(mem.Paths(), []string{p})
}

func TestAddLootTable_YAML(t *testing.T) {
	is := is.New(t)
	mem := NewMemory()

	p, err := AddLootTable(mem, lootgen.MustParseIdentifier("mod:ruby_ore"), ruby(), WithFormat(FormatYAML))
	is.NoErr(err)
	data, _ := mem.Get(p)

	var got document.YAML
	is.NoErr(yaml.Unmarshal(data, &got))
	want, err := ruby().Serialize(lootgen.NewContext())
	is.NoErr(err)
	is.True(document.Equal(want, got.Value))
}

func TestAddLootTable_SerializeErrorWritesNothing(t *testing.T) {
	is := is.New(t)
	mem := NewMemory()
	bad := loot.NewTable(loot.ChestTableType).Function(loot.NewFunction(lootgen.MustParseIdentifier("copy_name")).CopyName(0))

	_, err := AddLootTable(mem, lootgen.MustParseIdentifier("mod:bad"), bad)
	var unsupported *lootgen.UnsupportedValueError
	is.True(errors.As(err, &unsupported))
	is.Equal(len(mem.Paths()), 0)
}

func TestDir_Put(t *testing.T) {
	is := is.New(t)
	root := t.TempDir()
	d := NewDir(root)

	p, err := AddLootTable(d, lootgen.MustParseIdentifier("mod:chests/vault"), ruby(), WithIndent("  "))
	is.NoErr(err)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
	is.NoErr(err)
	parsed, err := document.Parse(data)
	is.NoErr(err)
	want, _ := ruby().Serialize(lootgen.NewContext())
	is.True(document.Equal(want, parsed))
}

func TestPut_RejectsEscapingPaths(t *testing.T) {
	is := is.New(t)
	for _, p := range []string{"", "/etc/passwd", "../outside.json", "data/../../x"} {
		is.True(errors.Is(NewMemory().Put(p, nil), ErrInvalidPath))
		is.True(errors.Is(NewDir(t.TempDir()).Put(p, nil), ErrInvalidPath))
	}
}

func TestMemory_ConcurrentPut(t *testing.T) {
	is := is.New(t)
	mem := NewMemory()
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := lootgen.NewIdentifier("mod", fmt.Sprintf("t%d", i))
			if _, err := AddLootTable(mem, id, ruby()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	is.Equal(len(mem.Paths()), 32)
}
