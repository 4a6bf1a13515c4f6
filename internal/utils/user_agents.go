package utils

import (
	"fmt"

	"github.com/avct/uasurfer"
)

// UserAgentVersionToString formats v as major.minor.patch, or "" when uasurfer found no version.
func UserAgentVersionToString(v uasurfer.Version) string {
	if v == (uasurfer.Version{}) {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
