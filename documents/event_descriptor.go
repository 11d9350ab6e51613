package documents

import em "github.com/bluesky/event-model-go"

// DataKey describes one entry in the data property of Event documents.
// It is shared between EventDescriptor and Configuration, so only one
// generated model exists per run.
var DataKey = em.New("DataKey",
	"Describes the objects in the data property of Event documents").
	Field("dtype", em.String()).
	Doc("The type of the data in the event.").
	Field("shape", em.Array(em.Integer())).
	Doc("The shape of the data.  Empty list means scalar data.").
	Field("source", em.String()).
	Doc("The source (ex piece of hardware) of the data.").
	Field("external", em.String()).Optional().
	Doc("Where the data is stored if it is stored external to the events.").
	Pattern("^[A-Z]+:?").
	Field("object_name", em.String()).Optional().
	Doc("The name of the object this key was pulled from.").
	Field("units", em.String()).Optional().
	Doc("Engineering units of the value").
	MustBuild()

// Configuration carries readings of configurational fields recorded
// alongside a data stream.
var Configuration = em.New("Configuration", "").
	Field("data", em.Map(em.Any())).Optional().
	Doc("The actual measurement data").
	Field("data_keys", em.Map(em.Of(DataKey))).Optional().
	Doc("This describes the data stored alongside it in this configuration object.").
	Field("timestamps", em.Map(em.Any())).Optional().
	Doc("The timestamps of the individual measurement data").
	MustBuild()

// EventDescriptor describes the data captured in the associated Event
// documents.
var EventDescriptor = em.New("EventDescriptor",
	"Document to describe the data captured in the associated event documents").
	Field("data_keys", em.Map(em.Of(DataKey))).
	Doc("This describes the data in the Event Documents.").
	Field("uid", em.String()).
	Doc("Globally unique ID for this event descriptor.").
	Field("run_start", em.String()).
	Doc("Globally unique ID of this run's 'start' document.").
	Field("time", em.Number()).
	Doc("Creation time of the document as unix epoch time.").
	Field("object_keys", em.Map(em.Any())).Optional().
	Doc("Maps a Device's name to the names of the read attributes.").
	Field("name", em.String()).Optional().
	Doc("A human-friendly name for this data stream, such as 'primary' or 'baseline'.").
	Field("configuration", em.Map(em.Of(Configuration))).Optional().
	Doc("Readings of configurational fields necessary for interpreting data in the Events.").
	MustBuild()
