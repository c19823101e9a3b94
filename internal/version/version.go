package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is overridden at build time with -ldflags "-X .../version.Version=1.2.3"
var Version = "0.1.0-dev"

// Info describes the running binary
type Info struct {
	Version   string
	GoVersion string
	Revision  string // VCS revision, empty when not built from a checkout
	Modified  bool   // Working tree had local changes
}

// Get reads the build information embedded by the Go toolchain
func Get() Info {
	info := Info{Version: Version, GoVersion: runtime.Version()}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}
	return info
}

// String formats the info for `cloudide version`
func (i Info) String() string {
	s := fmt.Sprintf("cloudide %s (%s)", i.Version, i.GoVersion)
	if i.Revision != "" {
		rev := i.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if i.Modified {
			rev += "-dirty"
		}
		s += " " + rev
	}
	return s
}
