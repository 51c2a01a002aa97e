package version

import "runtime/debug"

// Version is the current semantic version of as3pkg
const Version = "0.3.0"

// Build metadata, set with -ldflags "-X github.com/danlite/as3pkg/internal/version.GitCommit=..."
var (
	BuildDate = "development"
	GitCommit = "unknown"
)

// Info returns version information as a string
func Info() string {
	return Version
}

// FullInfo returns detailed version information
func FullInfo() string {
	commit := GitCommit
	if commit == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 7 {
					commit = s.Value[:7]
				}
			}
		}
	}
	return "as3pkg " + Version + " (commit: " + commit + ", built: " + BuildDate + ")"
}
