package buildconfig

import "fmt"

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// String renders the full build identifier, e.g. "dev (unknown)".
func String() string {
	return fmt.Sprintf("%s (%s)", version, commit)
}
