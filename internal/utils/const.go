package utils

import (
	"time"
)

var (
	// StandardTimeLayouts is the set of standard time layouts used with ParseTimeString.
	StandardTimeLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		time.DateTime,
		time.DateOnly,
		time.RFC1123Z,
		time.RFC1123,
		time.RubyDate,
		time.ANSIC,
		"Jan 2 15:04:05 2006",
	}
)
