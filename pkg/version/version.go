package version

import (
	"os"
	"path/filepath"
	"runtime"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set at build time with -ldflags
var (
	GitSource   string
	GitTag      string
	GitBranch   string
	GitHash     string
	GoBuildTime string
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ExecName returns the name of the running executable.
func ExecName() string {
	exec, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exec)
}

// Version returns the version of the running executable, from the git
// tag or branch set at build time.
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	return "dev"
}

// Compiler returns the go compiler version and target.
func Compiler() string {
	return runtime.Version() + " (" + runtime.GOOS + "/" + runtime.GOARCH + ")"
}
