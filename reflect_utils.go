package lootgen

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/reoring/lootgen/document"
)

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// renderReflect handles the container kinds Render has no static case for:
// slices and arrays become arrays, string-keyed maps become objects with
// sorted keys, pointers are followed.
func (c *Context) renderReflect(v any) (document.Value, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		return c.Render(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		out := make(document.Array, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el, err := c.Render(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, el)
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &UnsupportedValueError{Value: v}
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		obj := document.NewObject()
		for _, k := range keys {
			el, err := c.Render(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			obj.Set(k, el)
		}
		return obj, nil
	}
	return nil, &UnsupportedValueError{Value: v}
}
