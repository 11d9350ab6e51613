package eventmodel

import "fmt"

// AmbiguousFieldError reports a field whose shape does not reduce to
// exactly one base type.
type AmbiguousFieldError struct {
	Decl  string
	Field string
}

func (e *AmbiguousFieldError) Error() string {
	return fmt.Sprintf("eventmodel: field %q in %s does not reduce to a single base type", e.Field, e.Decl)
}

// DuplicateFieldError reports a field name declared twice in the same
// document type.
type DuplicateFieldError struct {
	Decl  string
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("eventmodel: field %q declared twice in %s", e.Field, e.Decl)
}

// RefConflictError reports two fields sharing a reference name but
// resolving to different underlying types. A and B are shape summaries
// of the first and the conflicting occurrence.
type RefConflictError struct {
	Name string
	A, B string
}

func (e *RefConflictError) Error() string {
	return fmt.Sprintf("eventmodel: fields tagged Ref(%q) have differing types: %s and %s", e.Name, e.A, e.B)
}
