package documents

import em "github.com/bluesky/event-model-go"

// Event records one quanta of collected data.
var Event = em.New("Event",
	"Document to record a quanta of collected data").
	Field("data", em.Map(em.Any())).
	Doc("The actual measurement data").
	Field("timestamps", em.Map(em.Any())).
	Doc("The timestamps of the individual measurement data").
	Field("filled", em.Map(em.Union(em.Boolean(), em.String()))).Optional().
	Doc("Mapping each of the keys of externally-stored data to the boolean False, " +
		"indicating that the data has not been loaded, or to foreign keys " +
		"(moved here from 'data' when the data was loaded)").
	Field("descriptor", em.String()).
	Doc("UID of the EventDescriptor to which this Event belongs").
	Field("seq_num", em.Integer()).
	Doc("Sequence number to identify the location of this Event in the Event stream").
	Field("time", em.Number()).
	Doc("The event time. This maybe different than the timestamps on each of the data entries").
	Field("uid", em.String()).
	Doc("Globally unique identifier for this Event").
	MustBuild()
