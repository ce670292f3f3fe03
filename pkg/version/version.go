// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Version is set at link time with -ldflags "-X".
var Version = "dev"

type BuildInfo struct {
	GoVersion string
	Commit    string
	Time      string
	Modified  string
}

func ReadBuildInfo() *BuildInfo {
	info := &BuildInfo{}
	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		info.GoVersion = buildInfo.GoVersion
		// unfortunately, it's not a Go map
		for _, s := range buildInfo.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.time":
				info.Time = s.Value
			case "vcs.modified":
				info.Modified = s.Value
			}
		}
	}
	return info
}

func (info BuildInfo) Print(w io.Writer) {
	if info.GoVersion != "" {
		fmt.Fprintf(w, "GoVersion: %s\n", info.GoVersion)
	}
	if info.Time != "" {
		fmt.Fprintf(w, "Date: %s\n", info.Time)
	}
	if info.Commit != "" {
		fmt.Fprintf(w, "GitCommit: %s\n", info.Commit)
	}
	if info.Modified != "" {
		state := "clean"
		if info.Modified == "true" {
			state = "dirty"
		}
		fmt.Fprintf(w, "GitTreeState: %s\n", state)
	}
}
