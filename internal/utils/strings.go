package utils

import (
	"strings"
)

// Slugify lowercases s and collapses every run of characters outside [a-z0-9] into a single hyphen,
// trimming hyphens from both ends.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// FileExtension returns the lowercase extension of a file name without the dot, or fallback
// when the name has none.
func FileExtension(name, fallback string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 || idx == len(name)-1 {
		return fallback
	}

	ext := strings.ToLower(name[idx+1:])
	if strings.ContainsAny(ext, `/\`) {
		return fallback
	}

	return ext
}
