package documents

import em "github.com/bluesky/event-model-go"

// DatumPage is the column-oriented aggregation of Datum documents.
var DatumPage = em.New("DatumPage",
	"Page of documents to reference a quanta of externally-stored data").
	Field("datum_id", em.Array(em.String())).
	Doc("Array of globally unique identifiers for each Datum (akin to 'uid' for other Document types), typically formatted as '<resource>/<integer>'").
	Field("datum_kwargs", dataFrame()).
	Doc("Array of arguments to pass to the Handler to retrieve one quanta of data").
	Field("resource", em.String()).
	Doc("The UID of the Resource to which all Datums in the page belong").
	MustBuild()
