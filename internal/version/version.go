// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other bcq packages to avoid import cycles.

package version

import "runtime/debug"

// Version is the module version stamped by `go install`, or "dev" for local
// builds.
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// String renders the version as printed by --version.
func String() string {
	return "bcq " + Version
}
