package auth

import "crypto/subtle"

// timingSafeEqual compares two strings without returning early on the first differing
// byte. Differing lengths return false immediately; signature and hash lengths are fixed
// and public.
func timingSafeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
