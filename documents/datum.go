package documents

import em "github.com/bluesky/event-model-go"

// Datum references a single quanta of externally-stored data.
var Datum = em.New("Datum",
	"Document to reference a quanta of externally-stored data").
	Field("datum_id", em.String()).
	Doc("Globally unique identifier for this Datum (akin to 'uid' for other Document types), typically formatted as '<resource>/<integer>'").
	Field("datum_kwargs", em.Map(em.Any())).
	Doc("Arguments to pass to the Handler to retrieve one quanta of data").
	Field("resource", em.String()).
	Doc("The UID of the Resource to which this Datum belongs").
	MustBuild()
