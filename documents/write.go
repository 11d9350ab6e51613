package documents

import (
	"fmt"
	"os"

	em "github.com/bluesky/event-model-go"
)

// DefaultSchemaDir is the package-relative directory schemas are
// written to when the CLI is given no output directory.
const DefaultSchemaDir = "documents/schemas"

// All lists every document type in generation order.
var All = []*em.Decl{
	DatumPage,
	Datum,
	EventDescriptor,
	EventPage,
	Event,
	Resource,
	RunStart,
	RunStop,
	StreamDatum,
	StreamResource,
}

// WriteSchemas generates one schema file per document type into dir
// and returns the written paths. The run is fail-fast: the first
// normalization or merge error aborts it.
func WriteSchemas(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(All))
	for _, d := range All {
		var opts []em.Option
		frag, err := Fragment(d.Title())
		if err != nil {
			return nil, err
		}
		if frag != nil {
			opts = append(opts, em.WithFragment(frag))
		}
		path, err := em.WriteSchema(d, dir, opts...)
		if err != nil {
			return nil, fmt.Errorf("documents: %s: %w", d.Name(), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
