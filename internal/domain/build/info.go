// Package build describes the dockyard binary: what main stamps in through
// ldflags and where the project lives.
package build

import "fmt"

const repoURL = "https://github.com/bnema/dockyard"

// Info is filled by cmd/dockyard before any command runs. Local builds
// keep the "dev" and "unknown" placeholders.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Summary is the one line identification used as the man page source,
// e.g. "dockyard v0.4.0 (1a2b3c4)". The commit is left out when unknown.
func (i Info) Summary() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	commit := i.Commit
	if commit == "" || commit == "unknown" {
		return "dockyard " + version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("dockyard %s (%s)", version, commit)
}

// Contributors is printed by 'dockyard about'.
func Contributors() []string {
	return []string{"bnema"}
}

func RepoURL() string {
	return repoURL
}
