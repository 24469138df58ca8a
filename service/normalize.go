package service

import "strings"

// trimOrNil collapses absent and blank: nil stays nil, whitespace-only
// becomes nil, anything else is trimmed.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// trimKeepEmpty trims but preserves an explicit empty string, so a caller can
// clear a field by sending "". nil stays nil.
func trimKeepEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
