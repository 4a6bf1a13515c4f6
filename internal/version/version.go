package version

import (
	"github.com/prometheus/common/version"
)

var (
	Version   string = "dev"
	GitCommit string = "unknown"
	BuildTime string = "unknown"
)

const programName = "photo_portfolio"

func init() {
	version.Version = Version
	version.Revision = GitCommit
	version.BuildDate = BuildTime
}

// Info returns the one line build summary used in startup logs.
func Info() string {
	return version.Info()
}

// Print returns the multi line version banner for --version.
func Print() string {
	return version.Print(programName)
}

func ProgramName() string {
	return programName
}
