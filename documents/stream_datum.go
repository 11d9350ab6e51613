package documents

import em "github.com/bluesky/event-model-go"

// StreamRange describes a sequence of incrementing integers.
var StreamRange = em.New("StreamRange",
	"The parameters required to describe a sequence of incrementing integers").
	Field("start", em.Integer()).
	Doc("First number in the range (inclusive) like, start <= i < stop").
	Field("stop", em.Integer()).
	Doc("Last number in the range (exclusive) like, start <= i < stop").
	MustBuild()

// StreamDatum references a quanta of an externally-stored stream of
// data.
var StreamDatum = em.New("StreamDatum",
	"Document to reference a quanta of an externally-stored stream of data.").
	Field("uid", em.String()).
	Doc("Globally unique identifier for this Datum. A suggested formatting being "+
		"'<stream_resource>/<stream_name>/<block_id>'").
	Field("stream_resource", em.String()).
	Doc("The UID of the Stream Resource to which this Datum belongs.").
	Field("descriptor", em.String()).
	Doc("UID of the EventDescriptor to which this StreamDatum belongs").
	Field("indices", em.Of(StreamRange)).
	Doc("A slice object passed to the StreamResource handler so it can hand back data and timestamps").
	Field("seq_nums", em.Of(StreamRange)).
	Doc("A slice object showing the Event numbers the resource corresponds to").
	MustBuild()
