package documents

import em "github.com/bluesky/event-model-go"

// StreamResource references a collection of externally-stored data
// streams.
var StreamResource = em.New("StreamResource",
	"Document to reference a collection (e.g. file or group of files) of\n"+
		"externally-stored data streams").
	Field("data_key", em.String()).
	Doc("A string to show which data_key of the run that this stream_resource provides").
	Field("mimetype", em.String()).
	Doc("String identifying the format/type of this Stream Resource, used to "+
		"identify a compatible Handler").
	Field("parameters", em.Map(em.Any())).
	Doc("Additional keyword arguments to pass to the Handler to read a Stream Resource").
	Field("uri", em.String()).
	Doc("URI for locating this resource, e.g. file://localhost/data/assets/file.h5").
	Field("run_start", em.String()).Optional().
	Doc("Globally unique ID to the run_start document this Stream Resource is associated with.").
	Field("uid", em.String()).
	Doc("Globally unique identifier for this Stream Resource").
	MustBuild()
