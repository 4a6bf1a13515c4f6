package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseTimeString parses s with each of StandardTimeLayouts in turn. Layouts without a zone are
// read as UTC.
func ParseTimeString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	for _, layout := range StandardTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse time string '%s'", s)
}
