package documents

import em "github.com/bluesky/event-model-go"

// Resource references a collection of externally-stored data, e.g. a
// file or group of files.
var Resource = em.New("Resource",
	"Document to reference a collection (e.g. file or group of files) of externally-stored data").
	Field("spec", em.String()).
	Doc("String identifying the format/type of this Resource, used to identify a compatible Handler").
	Field("root", em.String()).
	Doc("Subset of resource_path that is a local detail, not semantic.").
	Field("resource_path", em.String()).
	Doc("Filepath or URI for locating this resource").
	Field("resource_kwargs", em.Map(em.Any())).
	Doc("Additional argument to pass to the Handler to read a Resource").
	Field("path_semantics", em.String()).
	Doc("Rules for joining paths").
	Field("uid", em.String()).
	Doc("Globally unique identifier for this Resource").
	Field("run_start", em.String()).Optional().
	Doc("Globally unique ID to the run_start document this resource is associated with.").
	MustBuild()
