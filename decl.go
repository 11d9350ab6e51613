package eventmodel

import "strings"

// ShapeKind identifies a Shape variant.
type ShapeKind int

const (
	KindInvalid ShapeKind = iota
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindAny
	KindArray
	KindMap
	KindUnion
	KindDecl
)

// kindRef marks a normalized node that points at a definitions entry.
// It never appears in declared shapes.
const kindRef ShapeKind = -1

// Shape is a tagged-variant description of a field's value type,
// stated directly by the declaration author.
type Shape struct {
	kind    ShapeKind
	items   *Shape   // KindArray
	values  *Shape   // KindMap
	members []*Shape // KindUnion
	decl    *Decl    // KindDecl
}

// String returns the string shape.
func String() *Shape { return &Shape{kind: KindString} }

// Number returns the floating-point number shape.
func Number() *Shape { return &Shape{kind: KindNumber} }

// Integer returns the integer shape.
func Integer() *Shape { return &Shape{kind: KindInteger} }

// Boolean returns the boolean shape.
func Boolean() *Shape { return &Shape{kind: KindBoolean} }

// Any returns the unconstrained shape.
func Any() *Shape { return &Shape{kind: KindAny} }

// Array returns an array shape with the given item shape.
func Array(items *Shape) *Shape { return &Shape{kind: KindArray, items: items} }

// Map returns a string-keyed mapping shape with the given value shape.
func Map(values *Shape) *Shape { return &Shape{kind: KindMap, values: values} }

// Union returns a shape matching any one of the member shapes.
func Union(members ...*Shape) *Shape {
	if len(members) == 0 {
		return &Shape{kind: KindInvalid}
	}
	return &Shape{kind: KindUnion, members: members}
}

// Of returns a shape nesting another document declaration. The nested
// declaration is expanded into its own generated model and referenced
// from the enclosing schema's definitions.
func Of(d *Decl) *Shape { return &Shape{kind: KindDecl, decl: d} }

// Kind reports the shape's variant.
func (s *Shape) Kind() ShapeKind { return s.kind }

// valid reports whether the shape reduces to exactly one base type.
func (s *Shape) valid() bool {
	if s == nil {
		return false
	}
	switch s.kind {
	case KindString, KindNumber, KindInteger, KindBoolean, KindAny:
		return true
	case KindArray:
		return s.items.valid()
	case KindMap:
		return s.values.valid()
	case KindUnion:
		for _, m := range s.members {
			if !m.valid() {
				return false
			}
		}
		return len(s.members) > 0
	case KindDecl:
		return s.decl != nil
	default:
		return false
	}
}

// String renders a compact human-readable summary, used in error
// messages.
func (s *Shape) String() string {
	if s == nil {
		return "<nil>"
	}
	switch s.kind {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindAny:
		return "any"
	case KindArray:
		return "array[" + s.items.String() + "]"
	case KindMap:
		return "map[" + s.values.String() + "]"
	case KindUnion:
		parts := make([]string, len(s.members))
		for i, m := range s.members {
			parts[i] = m.String()
		}
		return "union[" + strings.Join(parts, "|") + "]"
	case KindDecl:
		if s.decl == nil {
			return "decl[<nil>]"
		}
		return "decl[" + s.decl.name + "]"
	default:
		return "invalid"
	}
}

// shapeEqual reports structural identity. Nested declarations compare
// by name: a declaration is built once and reused by reference.
func shapeEqual(a, b *Shape) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindArray:
		return shapeEqual(a.items, b.items)
	case KindMap:
		return shapeEqual(a.values, b.values)
	case KindUnion:
		if len(a.members) != len(b.members) {
			return false
		}
		for i := range a.members {
			if !shapeEqual(a.members[i], b.members[i]) {
				return false
			}
		}
		return true
	case KindDecl:
		return a.decl == b.decl || a.decl.name == b.decl.name
	default:
		return true
	}
}

// Field is one named member of a document declaration.
type Field struct {
	name     string
	doc      string
	pattern  string
	optional bool
	ref      string
	shape    *Shape
}

// Decl is a completed document declaration: a named record shape with a
// fixed, ordered set of fields. Decls are immutable once built, so
// nesting always forms a finite acyclic tree.
type Decl struct {
	name   string
	doc    string
	fields []Field
}

// Name returns the declared name, e.g. "RunStart".
func (d *Decl) Name() string { return d.name }

// Doc returns the declaration's description.
func (d *Decl) Doc() string { return d.doc }

// Title returns the snake_case form of the name, used as the schema
// title and the output file stem.
func (d *Decl) Title() string { return snakeCase(d.name) }
