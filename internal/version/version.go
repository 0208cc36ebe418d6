package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags
var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// Get resolves build metadata, falling back to the embedded build info when
// ldflags were not set (the go install case)
func Get() Info {
	info := Info{
		Version:   version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: "unknown",
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = buildInfo.GoVersion

	if info.Version == "dev" {
		if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
			info.Version = buildInfo.Main.Version
		}
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "unknown" {
					info.GitCommit = setting.Value
					if len(info.GitCommit) > 7 {
						info.GitCommit = info.GitCommit[:7]
					}
				}
			case "vcs.time":
				if info.BuildTime == "unknown" {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	return info
}

// Detailed renders the full multi-line version report used by the version
// subcommand
func (i Info) Detailed() string {
	return fmt.Sprintf(`TabDeck %s
Git Commit: %s
Build Time: %s
Go Version: %s`, i.Version, i.GitCommit, i.BuildTime, i.GoVersion)
}
