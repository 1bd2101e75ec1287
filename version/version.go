package version

const (
	// CoreSemVer is used as the fallback version of the revlog digest core
	// when not using git describe. It uses semantic versioning format.
	CoreSemVer = "0.3.0-dev"
)

// GitCommitHash uses git rev-parse HEAD to find the commit hash, which is
// helpful when working with a revdigest binary. Set via -ldflags at build
// time.
var GitCommitHash = ""
