package jsonschema_test

import (
	"reflect"
	"testing"

	"github.com/bluesky/event-model-go/jsonschema"
)

// normalize marshals v to compact JSON to remove pointer identity from
// comparisons.
func normalize(t *testing.T, d *jsonschema.Doc) string {
	t.Helper()
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	return string(b)
}

func TestMerge_FragmentKeysWinSiblingsPreserved(t *testing.T) {
	generated := jsonschema.New().Set("properties", jsonschema.New().
		Set("a", jsonschema.New().Set("type", "integer")).
		Set("b", jsonschema.New().Set("type", "string")))
	fragment := jsonschema.New().Set("properties", jsonschema.New().
		Set("a", jsonschema.New().Set("enum", []any{1, 2})))

	got := normalize(t, jsonschema.Merge(fragment, generated))
	want := `{"properties":{"a":{"type":"integer","enum":[1,2]},"b":{"type":"string"}}}`
	if got != want {
		t.Fatalf("merge mismatch\n got=%s\nwant=%s", got, want)
	}
}

func TestMerge_TypeMismatchPrefersFragment(t *testing.T) {
	generated := jsonschema.New().
		Set("x", jsonschema.New().Set("y", 1)).
		Set("s", "generated")
	fragment := jsonschema.New().
		Set("x", []any{1}).
		Set("s", 7)

	out := jsonschema.Merge(fragment, generated)
	if v, _ := out.Get("x"); !reflect.DeepEqual(v, []any{1}) {
		t.Fatalf("x not replaced by fragment: %v", v)
	}
	if v, _ := out.Get("s"); v != 7 {
		t.Fatalf("s not replaced by fragment: %v", v)
	}
}

func TestMerge_MatchingScalarsKeepGenerated(t *testing.T) {
	generated := jsonschema.New().Set("title", "run_start")
	fragment := jsonschema.New().Set("title", "other")
	out := jsonschema.Merge(fragment, generated)
	if v, _ := out.Get("title"); v != "run_start" {
		t.Fatalf("generated scalar overridden: %v", v)
	}
}

func TestMerge_ListsConcatenateFragmentFirst(t *testing.T) {
	generated := jsonschema.New().Set("l", []any{1, 2})
	fragment := jsonschema.New().Set("l", []any{3, 4})
	out := jsonschema.Merge(fragment, generated)
	if v, _ := out.Get("l"); !reflect.DeepEqual(v, []any{3, 4, 1, 2}) {
		t.Fatalf("list concat mismatch: %v", v)
	}
}

func TestMerge_NewKeysAppendedInputsUntouched(t *testing.T) {
	generated := jsonschema.New().Set("a", 1)
	fragment := jsonschema.New().Set("b", 2)
	out := jsonschema.Merge(fragment, generated)
	if got := out.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("keys mismatch: %v", got)
	}
	if generated.Has("b") {
		t.Fatal("merge mutated generated input")
	}
}

func TestStripNewlines_DescriptionsOnly(t *testing.T) {
	d := jsonschema.New().
		Set("description", "line one\nline two").
		Set("pattern", "a\nb").
		Set("nested", jsonschema.New().Set("description", "x\ny"))
	jsonschema.StripNewlines(d)

	if v, _ := d.Get("description"); v != "line one line two" {
		t.Fatalf("top description: %q", v)
	}
	if v, _ := d.Get("pattern"); v != "a\nb" {
		t.Fatalf("non-description value touched: %q", v)
	}
	nested, _ := d.Get("nested")
	if v, _ := nested.(*jsonschema.Doc).Get("description"); v != "x y" {
		t.Fatalf("nested description: %q", v)
	}
}

func TestSortProperties_OnlyPropertiesMappings(t *testing.T) {
	d := jsonschema.New().
		Set("properties", jsonschema.New().Set("z", 1).Set("a", 2)).
		Set("other", jsonschema.New().Set("z", 1).Set("a", 2)).
		Set("definitions", jsonschema.New().
			Set("m", jsonschema.New().Set("properties", jsonschema.New().Set("b", 1).Set("a", 2))))
	jsonschema.SortProperties(d)

	props, _ := d.Get("properties")
	if got := props.(*jsonschema.Doc).Keys(); !reflect.DeepEqual(got, []string{"a", "z"}) {
		t.Fatalf("properties not sorted: %v", got)
	}
	other, _ := d.Get("other")
	if got := other.(*jsonschema.Doc).Keys(); !reflect.DeepEqual(got, []string{"z", "a"}) {
		t.Fatalf("unrelated mapping reordered: %v", got)
	}
	defs, _ := d.Get("definitions")
	m, _ := defs.(*jsonschema.Doc).Get("m")
	mp, _ := m.(*jsonschema.Doc).Get("properties")
	if got := mp.(*jsonschema.Doc).Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("nested properties not sorted: %v", got)
	}
}

func TestSortProperties_DoesNotDescendIntoEntries(t *testing.T) {
	inner := jsonschema.New().Set("properties", jsonschema.New().Set("z", 1).Set("a", 2))
	d := jsonschema.New().Set("properties", jsonschema.New().Set("field", inner))
	jsonschema.SortProperties(d)

	ip, _ := inner.Get("properties")
	if got := ip.(*jsonschema.Doc).Keys(); !reflect.DeepEqual(got, []string{"z", "a"}) {
		t.Fatalf("sorted entry was descended into: %v", got)
	}
}
