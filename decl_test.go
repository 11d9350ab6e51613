package eventmodel_test

import (
	"errors"
	"testing"

	em "github.com/bluesky/event-model-go"
)

func TestBuilder_DuplicateFieldFailsBuild(t *testing.T) {
	_, err := em.New("Thing", "").
		Field("a", em.String()).
		Field("a", em.Integer()).
		Build()
	var dup *em.DuplicateFieldError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateFieldError, got %v", err)
	}
	if dup.Decl != "Thing" || dup.Field != "a" {
		t.Fatalf("error detail mismatch: %+v", dup)
	}
}

func TestBuilder_AmbiguousShapeFailsBuild(t *testing.T) {
	cases := []struct {
		name  string
		shape *em.Shape
	}{
		{"nil shape", nil},
		{"empty union", em.Union()},
		{"array of empty union", em.Array(em.Union())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := em.New("Thing", "").Field("a", tc.shape).Build()
			var amb *em.AmbiguousFieldError
			if !errors.As(err, &amb) {
				t.Fatalf("expected AmbiguousFieldError, got %v", err)
			}
		})
	}
}

func TestDecl_TitleIsSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Datum":           "datum",
		"DatumPage":       "datum_page",
		"EventDescriptor": "event_descriptor",
		"RunStart":        "run_start",
		"StreamResource":  "stream_resource",
	}
	for name, want := range cases {
		d := em.New(name, "").Field("uid", em.String()).MustBuild()
		if got := d.Title(); got != want {
			t.Fatalf("%s: title %q, want %q", name, got, want)
		}
	}
}

func TestBuilder_MustBuildPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	em.New("Thing", "").Field("a", em.Union()).MustBuild()
}
