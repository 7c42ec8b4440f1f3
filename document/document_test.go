package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestObject_SetKeepsInsertionOrder(t *testing.T) {
	o := NewObject().Set("b", Int(1)).Set("a", Int(2)).Set("b", Int(3))
	got, err := Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `{"b":3,"a":2}` {
		t.Fatalf("unexpected json: %s", got)
	}
}

func TestObject_SetNilStoresNull(t *testing.T) {
	o := NewObject().Set("predicate", nil)
	v, ok := o.Get("predicate")
	if !ok || v.Kind() != KindNull {
		t.Fatalf("expected null value present, got %v ok=%v", v, ok)
	}
}

func TestObject_Delete(t *testing.T) {
	o := NewObject().Set("a", Int(1)).Set("b", Int(2)).Set("c", Int(3))
	o.Delete("b")
	o.Delete("missing")
	if diff := cmp.Diff([]string{"a", "c"}, o.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_Scalars(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null, `null`},
		{"nil", nil, `null`},
		{"bool", Bool(true), `true`},
		{"string", String(`a"b`), `"a\"b"`},
		{"int", Int(-7), `-7`},
		{"float32", Float32(0.1), `0.1`},
		{"float64", Float64(2.5), `2.5`},
		{"array", Array{Int(1), String("x"), Null}, `[1,"x",null]`},
		{"empty array", Array{}, `[]`},
		{"empty object", NewObject(), `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Marshal(tc.v)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestMarshalIndent(t *testing.T) {
	o := NewObject().Set("a", Array{Int(1)})
	got, err := MarshalIndent(o, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "{\n  \"a\": [\n    1\n  ]\n}"
	if string(got) != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestParse_KeepsOrderAndNumberText(t *testing.T) {
	in := []byte(`{"z":1.50,"a":{"y":[true,null,"s"],"b":-3}}`)
	v, err := Parse(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := NewObject().
		Set("z", Number("1.50")).
		Set("a", NewObject().
			Set("y", Array{Bool(true), Null, String("s")}).
			Set("b", Number("-3")))
	if !Equal(want, v) {
		t.Fatalf("unexpected tree: %#v", v)
	}
	out, err := Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != string(in) {
		t.Fatalf("round trip changed bytes: %s", out)
	}
}

func TestParse_DuplicateKey(t *testing.T) {
	_, err := Parse([]byte(`{"a":{"b/c":1,"b/c":2}}`))
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if dup.Path != "/a/b~1c" {
		t.Fatalf("unexpected path %q", dup.Path)
	}
}

func TestParse_TrailingData(t *testing.T) {
	if _, err := Parse([]byte(`{} {}`)); !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatalf("expected error on empty input")
	}
}

func TestClone_DoesNotAlias(t *testing.T) {
	inner := NewObject().Set("k", Int(1))
	orig := NewObject().Set("inner", inner).Set("list", Array{Int(1)})
	cp := Clone(orig).(*Object)

	inner.Set("k", Int(2))
	v, _ := cp.Get("inner")
	got, _ := v.(*Object).Get("k")
	if got != Int(1) {
		t.Fatalf("clone aliased nested object: %v", got)
	}
	if Clone(nil) != nil {
		t.Fatalf("Clone(nil) should be nil")
	}
}

func TestEqual_OrderMatters(t *testing.T) {
	a := NewObject().Set("x", Int(1)).Set("y", Int(2))
	b := NewObject().Set("y", Int(2)).Set("x", Int(1))
	if Equal(a, b) {
		t.Fatalf("objects with different key order must differ")
	}
	if !Equal(nil, Null) {
		t.Fatalf("nil should equal Null")
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	src := `
name: iron
count: 3
chance: 0.5
enabled: true
empty: ~
tags: [a, b]
`
	var n yaml.Node
	if err := yaml.Unmarshal([]byte(src), &n); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	v, err := FromYAML(&n)
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	want := NewObject().
		Set("name", String("iron")).
		Set("count", Int(3)).
		Set("chance", Float64(0.5)).
		Set("enabled", Bool(true)).
		Set("empty", Null).
		Set("tags", Array{String("a"), String("b")})
	if !Equal(want, v) {
		t.Fatalf("unexpected tree from yaml")
	}

	out, err := MarshalYAML(v)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	var back yaml.Node
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-read yaml: %v", err)
	}
	again, err := FromYAML(&back)
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	if !Equal(v, again) {
		t.Fatalf("yaml round trip changed the tree:\n%s", out)
	}
}

func TestYAMLWrapper_InStruct(t *testing.T) {
	var cfg struct {
		Params YAML `yaml:"params"`
	}
	if err := yaml.Unmarshal([]byte("params:\n  b: 1\n  a: x\n"), &cfg); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	o, ok := cfg.Params.Object()
	if !ok {
		t.Fatalf("expected object, got %T", cfg.Params.Value)
	}
	if diff := cmp.Diff([]string{"b", "a"}, o.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}
