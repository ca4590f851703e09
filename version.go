/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storemeter

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/suparena/storemeter.GitCommit=...".
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetVersionInfo returns the version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("storemeter %s (commit %s, built %s, %s %s)",
		v.Version, v.GitCommit, v.BuildDate, v.GoVersion, v.Platform)
}
