package eventmodel

import (
	"fmt"
	"path/filepath"

	"github.com/bluesky/event-model-go/jsonschema"
)

// Option configures a single generation run.
type Option func(*genConfig)

type genConfig struct {
	sort     bool
	fragment *jsonschema.Doc
}

// WithFragment deep-merges a hand-authored schema fragment over the
// generated schema. Fragment values win on type mismatch, mappings
// merge key-wise, and lists concatenate.
func WithFragment(fragment *jsonschema.Doc) Option {
	return func(c *genConfig) { c.fragment = fragment }
}

// WithoutSort leaves every properties mapping in declaration order
// instead of sorting its keys alphabetically.
func WithoutSort() Option {
	return func(c *genConfig) { c.sort = false }
}

// node is a normalized field type: a declared shape with every nested
// declaration replaced by a reference into the definitions table.
type node struct {
	kind    ShapeKind
	ref     string
	items   *node
	values  *node
	members []*node
}

// model is the declarative validation representation built from a
// normalized declaration, from which the schema document is rendered.
type model struct {
	title  string
	doc    string
	fields []modelField
}

type modelField struct {
	name     string
	doc      string
	pattern  string
	optional bool
	typ      *node
}

// refWrapper is the single-value wrapper model materialized for a
// reference-tagged field. Only the pattern portion of the field's
// metadata carries over.
type refWrapper struct {
	title   string
	pattern string
	shape   *Shape
	typ     *node
}

type definition struct {
	model   *model
	wrapper *refWrapper
}

// generator owns the per-run memoization state: generated nested models
// and reference wrappers, keyed by their definitions name. It is
// created fresh for each Generate call and threaded through the
// recursive build, never shared between runs.
type generator struct {
	defs  map[string]*definition
	order []string
}

func newGenerator() *generator {
	return &generator{defs: map[string]*definition{}}
}

func (g *generator) buildModel(d *Decl) (*model, error) {
	m := &model{title: d.Title(), doc: d.doc}
	for _, f := range d.fields {
		mf, err := g.normalizeField(f)
		if err != nil {
			return nil, err
		}
		m.fields = append(m.fields, mf)
	}
	return m, nil
}

// normalizeField reduces one field to a (type, metadata) pair the
// renderer can consume: nested declarations become definition refs and
// reference tags are swapped for their wrapper model.
func (g *generator) normalizeField(f Field) (modelField, error) {
	n, err := g.normalizeShape(f.shape)
	if err != nil {
		return modelField{}, err
	}
	mf := modelField{name: f.name, doc: f.doc, pattern: f.pattern, optional: f.optional, typ: n}
	if f.ref != "" {
		key, err := g.internRef(f.ref, f.shape, f.pattern, n)
		if err != nil {
			return modelField{}, err
		}
		mf.typ = &node{kind: kindRef, ref: key}
		mf.pattern = ""
	}
	return mf, nil
}

func (g *generator) normalizeShape(s *Shape) (*node, error) {
	switch s.kind {
	case KindDecl:
		key, err := g.internDecl(s.decl)
		if err != nil {
			return nil, err
		}
		return &node{kind: kindRef, ref: key}, nil
	case KindArray:
		items, err := g.normalizeShape(s.items)
		if err != nil {
			return nil, err
		}
		return &node{kind: KindArray, items: items}, nil
	case KindMap:
		values, err := g.normalizeShape(s.values)
		if err != nil {
			return nil, err
		}
		return &node{kind: KindMap, values: values}, nil
	case KindUnion:
		members := make([]*node, 0, len(s.members))
		for _, m := range s.members {
			n, err := g.normalizeShape(m)
			if err != nil {
				return nil, err
			}
			members = append(members, n)
		}
		return &node{kind: KindUnion, members: members}, nil
	default:
		return &node{kind: s.kind}, nil
	}
}

// internDecl generates the model for a nested declaration exactly once
// per run, memoizing by its definitions key.
func (g *generator) internDecl(d *Decl) (string, error) {
	key := d.Title()
	if _, ok := g.defs[key]; ok {
		return key, nil
	}
	def := &definition{}
	g.defs[key] = def
	g.order = append(g.order, key)
	m, err := g.buildModel(d)
	if err != nil {
		return "", err
	}
	def.model = m
	return key, nil
}

// internRef materializes (or reuses) the wrapper model for a reference
// name. Reuse requires a structurally identical underlying shape.
func (g *generator) internRef(name string, s *Shape, pattern string, n *node) (string, error) {
	key := snakeCase(name)
	if def, ok := g.defs[key]; ok {
		if def.wrapper == nil {
			return "", &RefConflictError{Name: name, A: "document type " + key, B: s.String()}
		}
		if !shapeEqual(def.wrapper.shape, s) {
			return "", &RefConflictError{Name: name, A: def.wrapper.shape.String(), B: s.String()}
		}
		return key, nil
	}
	g.defs[key] = &definition{wrapper: &refWrapper{title: key, pattern: pattern, shape: s, typ: n}}
	g.order = append(g.order, key)
	return key, nil
}

func refDoc(key string) *jsonschema.Doc {
	return jsonschema.New().Set("$ref", "#/definitions/"+key)
}

func renderNode(n *node) *jsonschema.Doc {
	switch n.kind {
	case kindRef:
		return refDoc(n.ref)
	case KindString:
		return jsonschema.New().Set("type", "string")
	case KindNumber:
		return jsonschema.New().Set("type", "number")
	case KindInteger:
		return jsonschema.New().Set("type", "integer")
	case KindBoolean:
		return jsonschema.New().Set("type", "boolean")
	case KindArray:
		return jsonschema.New().Set("type", "array").Set("items", renderNode(n.items))
	case KindMap:
		d := jsonschema.New().Set("type", "object")
		if n.values.kind != KindAny {
			d.Set("additionalProperties", renderNode(n.values))
		}
		return d
	case KindUnion:
		members := make([]any, 0, len(n.members))
		for _, m := range n.members {
			members = append(members, renderNode(m))
		}
		return jsonschema.New().Set("anyOf", members)
	default: // KindAny
		return jsonschema.New()
	}
}

func renderProperty(f modelField) *jsonschema.Doc {
	if f.typ.kind == kindRef {
		// A bare ref unless metadata must accompany it, in which case
		// the ref nests under allOf so siblings are not discarded.
		if f.doc == "" && !f.optional {
			return refDoc(f.typ.ref)
		}
		p := jsonschema.New()
		if f.doc != "" {
			p.Set("description", f.doc)
		}
		if f.optional {
			p.Set("nullable", true)
		}
		return p.Set("allOf", []any{refDoc(f.typ.ref)})
	}
	p := jsonschema.New().Set("title", humanize(f.name))
	if f.doc != "" {
		p.Set("description", f.doc)
	}
	typeDoc := renderNode(f.typ)
	for _, k := range typeDoc.Keys() {
		v, _ := typeDoc.Get(k)
		p.Set(k, v)
	}
	if f.pattern != "" {
		p.Set("pattern", f.pattern)
	}
	if f.optional {
		p.Set("nullable", true)
	}
	return p
}

func renderModel(m *model) *jsonschema.Doc {
	doc := jsonschema.New().Set("title", m.title)
	if m.doc != "" {
		doc.Set("description", m.doc)
	}
	doc.Set("type", "object")
	props := jsonschema.New()
	var required []any
	for _, f := range m.fields {
		props.Set(f.name, renderProperty(f))
		if !f.optional {
			required = append(required, f.name)
		}
	}
	doc.Set("properties", props)
	if len(required) > 0 {
		doc.Set("required", required)
	}
	return doc
}

func renderWrapper(w *refWrapper) *jsonschema.Doc {
	doc := jsonschema.New().Set("title", w.title)
	typeDoc := renderNode(w.typ)
	for _, k := range typeDoc.Keys() {
		v, _ := typeDoc.Get(k)
		doc.Set(k, v)
	}
	if w.pattern != "" {
		doc.Set("pattern", w.pattern)
	}
	return doc
}

// Generate builds the declarative model for a document declaration and
// renders it to a JSON Schema document: normalize fields, render,
// replace newlines in descriptions, merge the hand-authored fragment
// if any, and sort properties keys. The run fails fast on the first
// normalization or merge error.
func Generate(d *Decl, opts ...Option) (*jsonschema.Doc, error) {
	cfg := genConfig{sort: true}
	for _, o := range opts {
		o(&cfg)
	}
	g := newGenerator()
	m, err := g.buildModel(d)
	if err != nil {
		return nil, err
	}
	doc := renderModel(m)
	if len(g.order) > 0 {
		defs := jsonschema.New()
		for _, key := range g.order {
			def := g.defs[key]
			if def.model != nil {
				defs.Set(key, renderModel(def.model))
			} else {
				defs.Set(key, renderWrapper(def.wrapper))
			}
		}
		doc.Set("definitions", defs)
	}
	jsonschema.StripNewlines(doc)
	if cfg.fragment != nil {
		doc = jsonschema.Merge(cfg.fragment, doc)
	}
	if cfg.sort {
		jsonschema.SortProperties(doc)
	}
	return doc, nil
}

// WriteSchema generates the schema for a declaration and writes it to
// dir as <title>.json with three-space indentation. It returns the
// written path.
func WriteSchema(d *Decl, dir string, opts ...Option) (string, error) {
	doc, err := Generate(d, opts...)
	if err != nil {
		return "", err
	}
	title, _ := doc.Get("title")
	name, ok := title.(string)
	if !ok || name == "" {
		return "", fmt.Errorf("eventmodel: schema for %s has no title", d.Name())
	}
	path := filepath.Join(dir, name+".json")
	if err := doc.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}
