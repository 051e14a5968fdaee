package utils

import (
	"strconv"
	"strings"
)

// ParseInt64 parses a positive identifier from a path segment.
func ParseInt64(value string) (int64, bool) {
	result, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || result < 1 {
		return 0, false
	}
	return result, true
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
