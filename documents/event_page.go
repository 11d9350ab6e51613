package documents

import em "github.com/bluesky/event-model-go"

// EventPage is the column-oriented aggregation of Event documents.
var EventPage = em.New("EventPage",
	"Page of documents to record a quanta of collected data").
	Field("filled", dataFrameForFilled()).Optional().
	Doc("Mapping each of the keys of externally-stored data to an array containing " +
		"the boolean False, indicating that the data has not been loaded, or to foreign keys " +
		"(moved here from 'data' when the data was loaded)").
	Field("descriptor", em.String()).
	Doc("The UID of the EventDescriptor to which all of the Events in this page belong").
	Field("data", dataFrame()).
	Doc("The actual measurement data").
	Field("timestamps", dataFrame()).
	Doc("The timestamps of the individual measurement data").
	Field("seq_num", em.Array(em.Integer())).
	Doc("Array of sequence numbers to identify the location of each Event in the Event stream").
	Field("time", em.Array(em.Number())).
	Doc("Array of Event times. This maybe different than the timestamps on each of the data entries").
	Field("uid", em.Array(em.String())).
	Doc("Array of globally unique identifiers for each Event").
	MustBuild()
