// internal/page/slug.go
//
// Slug helpers.
//
// • NormalizeSlug(s) ─ validates a request or file slug and returns its
//   canonical form.
// • MakeSlug(title) ─ converts arbitrary text into a slug.
//
// Rules (NormalizeSlug)
// ---------------------
// 1. Trim spaces and leading / trailing “/”, then lower-case everything.
// 2. Split on “/”; every segment must be non-empty lower-kebab ASCII
//    (a-z, 0-9, and inner “-”).  That rejects “..”, “.”, and “//”.
// 3. At most 8 segments and 200 bytes overall.
//
// Notes
// -----
// • A slug doubles as a relative file path for the file store, so the
//   segment rule is what keeps lookups inside the pages directory.

package page

import (
	"fmt"
	"strings"
)

const (
	maxSlugLen      = 200
	maxSlugSegments = 8
)

// NormalizeSlug returns the canonical form of s or an error wrapping
// ErrInvalidSlug.
func NormalizeSlug(s string) (string, error) {
	s = strings.ToLower(strings.Trim(strings.TrimSpace(s), "/"))
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidSlug)
	}
	if len(s) > maxSlugLen {
		return "", fmt.Errorf("%w: longer than %d bytes", ErrInvalidSlug, maxSlugLen)
	}

	segs := strings.Split(s, "/")
	if len(segs) > maxSlugSegments {
		return "", fmt.Errorf("%w: more than %d segments", ErrInvalidSlug, maxSlugSegments)
	}
	for _, seg := range segs {
		if !validSegment(seg) {
			return "", fmt.Errorf("%w: bad segment %q", ErrInvalidSlug, seg)
		}
	}
	return s, nil
}

func validSegment(seg string) bool {
	if seg == "" || seg[0] == '-' || seg[len(seg)-1] == '-' {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}

// MakeSlug converts title → lower-kebab ASCII.  Runs of anything outside
// a-z and 0-9 become one “-”.  An empty result becomes "page".
func MakeSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastWasDash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			if !lastWasDash {
				b.WriteRune('-')
				lastWasDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "page"
	}
	if len(slug) > 100 {
		slug = strings.TrimRight(slug[:100], "-")
	}
	return slug
}

// joinURL joins base and slug with exactly one “/”.
func joinURL(base, slug string) string {
	base = strings.TrimRight(base, "/")
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return base + "/"
	}
	return base + "/" + slug
}
