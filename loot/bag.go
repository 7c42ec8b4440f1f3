package loot

import (
	"fmt"
	"reflect"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
)

// bag is an insertion-ordered key/value store whose values are rendered
// through the Context only when the owner is serialized.
type bag struct {
	keys []string
	vals map[string]any
}

func newBag() *bag { return &bag{vals: map[string]any{}} }

func (b *bag) set(key string, v any) {
	if _, ok := b.vals[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.vals[key] = v
}

func (b *bag) get(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.vals[key]
	return v, ok
}

func (b *bag) clone() *bag {
	if b == nil {
		return nil
	}
	out := &bag{keys: make([]string, len(b.keys)), vals: make(map[string]any, len(b.vals))}
	copy(out.keys, b.keys)
	for k, v := range b.vals {
		out.vals[k] = cloneValue(v)
	}
	return out
}

// render renders every entry into a new object in insertion order.
func (b *bag) render(ctx *lootgen.Context) (*document.Object, error) {
	out := document.NewObject()
	if b == nil {
		return out, nil
	}
	for _, k := range b.keys {
		v, err := ctx.Render(b.vals[k])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out.Set(k, v)
	}
	return out, nil
}

// cloner is implemented by stored values that own mutable state.
type cloner interface {
	cloneAny() any
}

// cloneValue deep-copies the mutable parts of a stored value: documents,
// nested builders, slices and maps. Immutable leaves are shared.
func cloneValue(v any) any {
	switch tv := v.(type) {
	case nil:
		return nil
	case document.Value:
		return document.Clone(tv)
	case cloner:
		return tv.cloneAny()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			setCloned(out.Index(i), rv.Index(i))
		}
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			el := reflect.New(rv.Type().Elem()).Elem()
			setCloned(el, iter.Value())
			out.SetMapIndex(iter.Key(), el)
		}
		return out.Interface()
	}
	return v
}

func setCloned(dst, src reflect.Value) {
	if src.Kind() == reflect.Interface && src.IsNil() {
		return
	}
	c := cloneValue(src.Interface())
	if c == nil {
		return
	}
	dst.Set(reflect.ValueOf(c))
}

// cloneList copies a builder list, cloning every element. A nil list stays
// nil so absent fields remain absent.
func cloneList[T interface{ Clone() T }](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// renderList renders a builder list through the Context, naming the failing
// element in the error.
func renderList[T any](ctx *lootgen.Context, field string, items []T) (document.Array, error) {
	arr, err := lootgen.RenderAll(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("%s%w", field, err)
	}
	return arr, nil
}
