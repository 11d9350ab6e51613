package documents

import em "github.com/bluesky/event-model-go"

// Hints carries start-of-run hints for downstream consumers.
var Hints = em.New("Hints", "Start-of-run hints").
	Field("dimensions", em.Array(em.Any())).Optional().
	Doc("The independent axes of the experiment. Serves as a hint for the wise reader.").
	MustBuild()

// RunStart opens a run. Later documents link back to it, and it serves
// as the primary search target.
var RunStart = em.New("RunStart",
	"Document created at the start of run. Provides a seach target and\n"+
		"later documents link to it").
	Field("uid", em.String()).
	Doc("Globally unique ID for this run").
	Field("time", em.Number()).
	Doc("Time the run started.  Unix epoch time").
	Field("data_session", em.String()).Optional().
	Doc("An optional field for grouping runs. The meaning is not mandated, but "+
		"this is a data management grouping and not a scientific grouping. It is "+
		"intended to group runs in a visit or set of trials.").
	Pattern("^[A-Za-z0-9][A-Za-z0-9-]*$").
	Ref("DataSession").
	Field("data_groups", em.Array(em.String())).Optional().
	Doc("An optional list of data access groups that have meaning to some "+
		"external system. Examples might include facility, beamline, end stations, "+
		"proposal, safety form.").
	Field("data_type", em.Any()).Optional().
	Ref("DataType").
	Field("project", em.String()).Optional().
	Doc("Name of project that this run is part of").
	Field("sample", em.Union(em.Map(em.Any()), em.String())).Optional().
	Doc("Information about the sample, may be a UID to another collection").
	Field("scan_id", em.Integer()).Optional().
	Doc("Scan ID number, not globally unique").
	Field("group", em.String()).Optional().
	Doc("Unix group to associate this data with").
	Field("owner", em.String()).Optional().
	Doc("Unix owner to associate this data with").
	Field("hints", em.Of(Hints)).Optional().
	Doc("Start-of-run hints").
	MustBuild()
