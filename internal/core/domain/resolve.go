// Package domain extracts the normalized hostname used as cache key and API
// parameter from an active tab URL.
package domain

import "regexp"

// hostPattern skips an optional http(s) scheme, userinfo and "www." prefix,
// then captures everything up to the next ':', '/' or newline.
var hostPattern = regexp.MustCompile(`(?im)^(?:https?://)?(?:[^@\n]+@)?(?:www\.)?([^:/\n]+)`)

// Resolve returns the hostname of rawURL, or "" when nothing host-like is
// found. It never fails; callers continue with the empty domain.
func Resolve(rawURL string) string {
	m := hostPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}
