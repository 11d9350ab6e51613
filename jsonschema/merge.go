package jsonschema

import (
	"reflect"
	"sort"
	"strings"
)

// Merge deep-merges a hand-authored fragment over a generated document
// and returns the result, leaving both inputs untouched. For each
// fragment key: a key absent from the generated document is added; two
// mappings merge recursively; two lists concatenate, fragment entries
// first; on any type mismatch the fragment value wins. Matching
// scalars keep the generated value.
func Merge(fragment, generated *Doc) *Doc {
	out := generated.Clone()
	for _, k := range fragment.Keys() {
		fv, _ := fragment.Get(k)
		gv, ok := out.Get(k)
		if !ok {
			out.Set(k, cloneValue(fv))
			continue
		}
		fd, fIsDoc := fv.(*Doc)
		gd, gIsDoc := gv.(*Doc)
		fl, fIsList := fv.([]any)
		gl, gIsList := gv.([]any)
		switch {
		case fIsDoc && gIsDoc:
			out.Set(k, Merge(fd, gd))
		case fIsList && gIsList:
			merged := make([]any, 0, len(fl)+len(gl))
			for _, v := range fl {
				merged = append(merged, cloneValue(v))
			}
			for _, v := range gl {
				merged = append(merged, cloneValue(v))
			}
			out.Set(k, merged)
		case !fIsDoc && !gIsDoc && !fIsList && !gIsList && reflect.TypeOf(fv) == reflect.TypeOf(gv):
			// matching scalar types keep the generated value
		default:
			out.Set(k, cloneValue(fv))
		}
	}
	return out
}

// StripNewlines replaces literal newlines in every description value,
// at any nesting depth, with single spaces. The document is modified
// in place.
func StripNewlines(d *Doc) {
	for _, k := range d.keys {
		switch v := d.values[k].(type) {
		case *Doc:
			StripNewlines(v)
		case string:
			if k == "description" {
				d.values[k] = strings.ReplaceAll(v, "\n", " ")
			}
		}
	}
}

// SortProperties reorders every properties mapping's keys
// alphabetically, in place. Other mappings keep their key order, and
// sorted entries are not descended into.
func SortProperties(d *Doc) {
	for _, k := range d.keys {
		v, ok := d.values[k].(*Doc)
		if !ok {
			continue
		}
		if k == "properties" {
			sort.Strings(v.keys)
			continue
		}
		SortProperties(v)
	}
}
