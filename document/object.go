package document

import "iter"

// Object is a JSON object whose keys keep their insertion order. Setting an
// existing key replaces its value in place.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{vals: map[string]Value{}}
}

func (*Object) Kind() Kind { return KindObject }

func (o *Object) clone() Value {
	if o == nil {
		return (*Object)(nil)
	}
	out := &Object{keys: make([]string, len(o.keys)), vals: make(map[string]Value, len(o.vals))}
	copy(out.keys, o.keys)
	for k, v := range o.vals {
		out.vals[k] = Clone(v)
	}
	return out
}

// Set stores v under key and returns o for chaining. A nil v is stored as Null.
func (o *Object) Set(key string, v Value) *Object {
	if v == nil {
		v = Null
	}
	if o.vals == nil {
		o.vals = map[string]Value{}
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present, including keys holding Null.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key. Missing keys are ignored.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// All iterates over the entries in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.vals[k]) {
				return
			}
		}
	}
}

// Merge copies every entry of src into o, following Set semantics.
func (o *Object) Merge(src *Object) *Object {
	for k, v := range src.All() {
		o.Set(k, v)
	}
	return o
}

// Equal reports whether both objects hold the same entries in the same order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	if o.Len() == 0 {
		return true
	}
	for i, k := range o.keys {
		if other.keys[i] != k {
			return false
		}
		if !Equal(o.vals[k], other.vals[k]) {
			return false
		}
	}
	return true
}
