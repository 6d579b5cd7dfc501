package utils

import (
	"runtime/debug"
)

const (
	unknownVersion = "unknown"
	develVersion   = "(devel)"
)

// Version is overridden at link time with -ldflags "-X".
var Version = EmptyString

// GetApplicationVersion reports the link-time version, then the module version from build info.
func GetApplicationVersion() string {
	if Version != EmptyString {
		return Version
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	if buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key == "vcs.revision" && setting.Value != EmptyString {
			return setting.Value
		}
	}
	return unknownVersion
}
