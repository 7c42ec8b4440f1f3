package schemacheck

import (
	"errors"
	"strings"
	"testing"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
	"github.com/reoring/lootgen/loot"
)

func newChecker(t *testing.T) *Checker {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("new checker: %v", err)
	}
	return c
}

func hasIssue(iss Issues, path, code string) bool {
	for _, it := range iss {
		if it.Path == path && it.Code == code {
			return true
		}
	}
	return false
}

func TestCheck_RenderedTableIsValid(t *testing.T) {
	c := newChecker(t)
	id := lootgen.MustParseIdentifier
	table := loot.NewTable(loot.BlockTableType).Pool(loot.NewPool().
		BonusRolls(loot.BinomialRange{N: 1, P: 0.5}).
		Entry(loot.NewEntryOf(id("alternatives")).
			Child(loot.NewEntryOf(loot.ItemEntryType).Name(id("mod:ruby_ore")).
				Condition(loot.NewCondition(id("match_tool")).
					MatchTool(document.NewObject().Set("items", document.Array{document.String("minecraft:shears")})))).
			Child(loot.NewEntryOf(loot.ItemEntryType).Name(id("mod:ruby")).Weight(2).
				Function(loot.NewFunction(id("set_count")).SetCount(loot.Uniform(1, 3))))).
		Condition(loot.NewCondition(id("survives_explosion"))))

	v, err := table.Serialize(lootgen.NewContext())
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if err := c.Check(v); err != nil {
		t.Fatalf("expected valid table, got %v", err)
	}
}

func TestCheckJSON_Issues(t *testing.T) {
	c := newChecker(t)
	cases := []struct {
		name string
		in   string
		path string
		code string
	}{
		{
			name: "entry without type",
			in:   `{"pools":[{"rolls":1,"entries":[{"name":"minecraft:stone"}]}]}`,
			path: "/pools/0/entries/0",
			code: CodeRequired,
		},
		{
			name: "malformed identifier",
			in:   `{"type":"Minecraft:Block"}`,
			path: "/type",
			code: CodePattern,
		},
		{
			name: "unknown key",
			in:   `{"typo":1}`,
			path: "",
			code: CodeUnknownKey,
		},
		{
			name: "rolls of wrong type",
			in:   `{"pools":[{"rolls":"many","entries":[]}]}`,
			path: "/pools/0/rolls",
			code: CodeInvalidType,
		},
		{
			name: "duplicate key",
			in:   `{"type":"minecraft:block","type":"minecraft:chest"}`,
			path: "/type",
			code: CodeDuplicateKey,
		},
		{
			name: "malformed json",
			in:   `{"type":`,
			path: "",
			code: CodeParseError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.CheckJSON([]byte(tc.in))
			iss, ok := AsIssues(err)
			if !ok {
				t.Fatalf("expected Issues, got %v", err)
			}
			if !hasIssue(iss, tc.path, tc.code) {
				t.Fatalf("missing %s at %q in %v", tc.code, tc.path, iss)
			}
		})
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := Issues{
		{Path: "/a", Code: CodeInvalidType},
		{Path: "/b", Code: CodeUnknownKey},
		{Path: "/c", Code: CodeRequired},
		{Path: "/d", Code: CodePattern},
	}
	want := "invalid_type at /a; unknown_key at /b; required at /c; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("unexpected summary %q", got)
	}
	if _, ok := AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not convert to Issues")
	}
	if s := (Issue{Path: "/x", Code: CodeRequired, Message: "missing"}).String(); !strings.Contains(s, "required at /x") {
		t.Fatalf("unexpected issue string %q", s)
	}
}

func TestPointer_Escapes(t *testing.T) {
	if got := pointer([]string{"a/b", "c~d"}); got != "/a~1b/c~0d" {
		t.Fatalf("unexpected pointer %q", got)
	}
}
