// Package jsonschema holds the order-preserving JSON document
// representation the generator renders into, plus the post-processing
// passes applied to it: deep merge of hand-authored fragments,
// description cleanup, and alphabetical sorting of properties keys.
package jsonschema

import (
	"bytes"
	"os"

	j "github.com/goccy/go-json"
)

// Doc is an insertion-ordered JSON object. Values are *Doc, []any, or
// JSON scalars.
type Doc struct {
	keys   []string
	values map[string]any
}

// New returns an empty document.
func New() *Doc {
	return &Doc{values: map[string]any{}}
}

// Set assigns a key, keeping the original position for existing keys
// and appending new ones. It returns the document for chaining.
func (d *Doc) Set(key string, v any) *Doc {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
	return d
}

// Get returns the value for key and whether it is present.
func (d *Doc) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Doc) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Len returns the number of keys.
func (d *Doc) Len() int { return len(d.keys) }

// Keys returns the keys in document order.
func (d *Doc) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Clone returns a deep copy.
func (d *Doc) Clone() *Doc {
	out := New()
	for _, k := range d.keys {
		out.Set(k, cloneValue(d.values[k]))
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Doc:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON emits the object with keys in document order.
func (d *Doc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := j.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := j.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Render returns the document as JSON indented with three spaces.
func (d *Doc) Render() ([]byte, error) {
	b, err := j.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := j.Indent(&out, b, "", "   "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteFile renders the document and overwrites path with it.
func (d *Doc) WriteFile(path string) error {
	b, err := d.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
