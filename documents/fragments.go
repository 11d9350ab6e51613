package documents

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/bluesky/event-model-go/jsonschema"
)

//go:embed fragments/*.yaml
var fragmentFS embed.FS

// Fragment returns the hand-authored schema fragment for a document
// title, or nil when none exists.
func Fragment(title string) (*jsonschema.Doc, error) {
	data, err := fragmentFS.ReadFile("fragments/" + title + ".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	frag, err := jsonschema.ParseFragment(data)
	if err != nil {
		return nil, fmt.Errorf("documents: fragment %s: %w", title, err)
	}
	return frag, nil
}
