package documents

import em "github.com/bluesky/event-model-go"

// RunStop closes a run and records its success/fail state.
var RunStop = em.New("RunStop",
	"Document for the end of a run indicating the success/fail state of the\n"+
		"run and the end time").
	Field("uid", em.String()).
	Doc("Globally unique ID for this document").
	Field("time", em.Number()).
	Doc("The time the run ended. Unix epoch").
	Field("run_start", em.String()).
	Doc("Reference back to the run_start document that this document is paired with.").
	Field("exit_status", em.String()).
	Doc("State of the run when it ended").
	Field("reason", em.String()).Optional().
	Doc("Long-form description of why the run ended").
	Field("num_events", em.Map(em.Integer())).Optional().
	Doc("Number of Events per named stream").
	Field("data_type", em.Any()).Optional().
	Ref("DataType").
	MustBuild()
