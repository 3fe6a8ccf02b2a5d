// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version and build information
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version of the toolkit
const Version = "0.1.0"

// Set at build time via -ldflags "-X github.com/msto63/lanpy/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info bundles version and build information
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the version and build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns "lanpy vX.Y.Z"
func (i Info) Short() string {
	return "lanpy v" + i.Version
}

// String returns a multi-line description as printed by "lanpy version"
func (i Info) String() string {
	return fmt.Sprintf("%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.Short(), i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
