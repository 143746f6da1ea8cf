// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time via ldflags, e.g.
//
//	go build -ldflags "-X github.com/open-cli-collective/seqgen/internal/version.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Template is the cobra version template for seqgen.
func Template() string {
	return fmt.Sprintf("seqgen version {{.Version}} (commit: %s, built: %s)\n", Commit, Date)
}
