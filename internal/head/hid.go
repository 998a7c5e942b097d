// internal/head/hid.go
//
// Short identity keys for head elements.
//
// Context
// -------
// The vue-meta consumer matches elements across renders by their `hid`.  A
// hid derived from a semantic key (e.g. "og:image:001") is stable between
// renders of the same page, so the consumer patches the element in place
// instead of appending a duplicate.
//
// Notes
// -----
//   - Go has no null string; the empty string stands in for it.  Hid("")
//     returns "" and callers treat "" as "no hid".
//   - The digest is MD5, hex encoded, cut to the first eight characters.
package head

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// hidLength is the number of hex characters kept from the digest.
const hidLength = 8

// Hid returns the first eight lowercase hex characters of the MD5 digest of
// value, or "" when value is empty.
func Hid(value string) string {
	if value == "" {
		return ""
	}
	sum := md5.Sum([]byte(value))
	return hex.EncodeToString(sum[:])[:hidLength]
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }

// FirstNonBlank returns the first value that is not blank, or "".
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}
