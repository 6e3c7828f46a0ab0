package pkgdomain

const (
	// TaskRootPath is where the FaaS runtime unpacks the artifact at invoke time.
	TaskRootPath = "/var/task"

	// InitScriptName is the fixed name the init script gets inside the artifact.
	InitScriptName = "init_script.sh"

	// HandlerExtension is the extension of the staged supervisor handler.
	HandlerExtension = ".py"

	EnvInitScriptPath = "INIT_SCRIPT_PATH"
	EnvExtraPayload   = "EXTRA_PAYLOAD"
)

const (
	// DefaultMaxPayloadSize is the direct-upload ceiling (50 MiB).
	DefaultMaxPayloadSize int64 = 52428800

	// DefaultMaxS3PayloadSize is the ceiling when a deployment bucket mediates
	// the upload (250 MiB).
	DefaultMaxS3PayloadSize int64 = 262144000
)

// DeploymentConfig is the per-function view the pipeline builds from. Optional
// string fields use "" as the explicit "unset" marker; the pipeline never
// probes for field presence dynamically. Only Environment is mutated during a
// build, everything else is read-only to the pipeline.
type DeploymentConfig struct {
	FunctionName string

	// Image is a remote container image reference. It is only prepared when
	// DeploymentBucket is also set.
	Image string

	// ImageFile is a local image archive, resolved against ConfigPath when set.
	ImageFile string

	// InitScript is a local script path, resolved against ConfigPath when set.
	InitScript string

	// ExtraPayload is a local directory whose tree is copied into the artifact
	// root.
	ExtraPayload string

	// ConfigPath is the base directory relative optional paths resolve against.
	ConfigPath string

	// DeploymentBucket enables the bucket-mediated deployment path and with it
	// the larger size ceiling.
	DeploymentBucket string

	MaxPayloadSize   int64
	MaxS3PayloadSize int64

	// ArtifactPath is where the final zip is written.
	ArtifactPath string

	// Environment is handed to the runtime shim; the pipeline injects the
	// init-script and extra-payload pointers into it.
	Environment map[string]string

	// KeepWorkDir retains the working directory after the build for debugging.
	KeepWorkDir bool
}

// SizeLimit returns the ceiling that governs this deployment transport.
func (c *DeploymentConfig) SizeLimit() int64 {
	if c.DeploymentBucket != "" {
		return c.MaxS3PayloadSize
	}
	return c.MaxPayloadSize
}

// BucketMediated reports whether the artifact travels through object storage.
func (c *DeploymentConfig) BucketMediated() bool {
	return c.DeploymentBucket != ""
}
