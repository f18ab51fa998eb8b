// Package version exposes the application version derived from build metadata.
//
// Priority: -ldflags override > VCS info from debug.BuildInfo > "dev" fallback.
// Builds from a modified working tree carry a "-dirty" suffix so a log line
// from a hand-patched binary is never mistaken for a released commit.
package version

import "runtime/debug"

// AppName is the application name used in version strings and the startup log.
const AppName = "fleetsense"

// gitCommitOverride is set via -ldflags at build time for container builds
// where .git is unavailable. Empty string means no override.
var gitCommitOverride string

// GitCommit is the short git commit hash (8 chars) from build info, with a
// "-dirty" suffix when the tree had local modifications. Set to "dev" when
// build info is unavailable (e.g., `go test`, non-git builds).
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		return shortRev(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	var commit string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if commit == "" {
		return "dev"
	}
	commit = shortRev(commit)
	if dirty {
		commit += "-dirty"
	}
	return commit
}

func shortRev(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "fleetsense/<commit>" for use in the health endpoint, logging,
// and outbound user-agent strings.
func Full() string {
	return AppName + "/" + GitCommit
}
