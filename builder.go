package eventmodel

// Builder assembles a document declaration field by field. Errors are
// collected and surfaced at Build so declarations read as a single
// fluent chain.
type Builder struct {
	name   string
	doc    string
	fields []Field
	index  map[string]int
	errs   []error
}

// New starts a declaration with the given name and description. The
// description becomes the generated schema's description.
func New(name, doc string) *Builder {
	return &Builder{name: name, doc: doc, index: map[string]int{}}
}

// Field registers a field with its shape. Fields are required unless
// marked Optional.
func (b *Builder) Field(name string, shape *Shape) *FieldStep {
	if _, dup := b.index[name]; dup {
		b.errs = append(b.errs, &DuplicateFieldError{Decl: b.name, Field: name})
		return &FieldStep{b: b, idx: -1}
	}
	if !shape.valid() {
		b.errs = append(b.errs, &AmbiguousFieldError{Decl: b.name, Field: name})
		return &FieldStep{b: b, idx: -1}
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, Field{name: name, shape: shape})
	return &FieldStep{b: b, idx: len(b.fields) - 1}
}

// Build finalizes the declaration, reporting the first recorded error.
func (b *Builder) Build() (*Decl, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	fields := make([]Field, len(b.fields))
	copy(fields, b.fields)
	return &Decl{name: b.name, doc: b.doc, fields: fields}, nil
}

// MustBuild is Build panicking on error, for package-level declarations.
func (b *Builder) MustBuild() *Decl {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// FieldStep scopes chained modifiers to the field just registered.
type FieldStep struct {
	b   *Builder
	idx int
}

// Doc sets the field's description.
func (f *FieldStep) Doc(doc string) *FieldStep {
	if f.idx >= 0 {
		f.b.fields[f.idx].doc = doc
	}
	return f
}

// Pattern constrains a string-valued field with a regular expression.
func (f *FieldStep) Pattern(pattern string) *FieldStep {
	if f.idx >= 0 {
		f.b.fields[f.idx].pattern = pattern
	}
	return f
}

// Ref tags the field for validation against a named, reusable wrapper
// schema instead of being inlined. Fields sharing a reference name must
// have structurally identical shapes.
func (f *FieldStep) Ref(name string) *FieldStep {
	if f.idx >= 0 {
		f.b.fields[f.idx].ref = name
	}
	return f
}

// Optional marks the field as not required; the generated property is
// rendered nullable and omitted from the required list.
func (f *FieldStep) Optional() *FieldStep {
	if f.idx >= 0 {
		f.b.fields[f.idx].optional = true
	}
	return f
}

// Field continues the chain on the parent builder.
func (f *FieldStep) Field(name string, shape *Shape) *FieldStep { return f.b.Field(name, shape) }

// Build finalizes the parent builder.
func (f *FieldStep) Build() (*Decl, error) { return f.b.Build() }

// MustBuild finalizes the parent builder, panicking on error.
func (f *FieldStep) MustBuild() *Decl { return f.b.MustBuild() }
