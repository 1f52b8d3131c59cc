package provider

import "strings"

// resolveModel returns requested when non-blank, otherwise the backend default.
func resolveModel(requested, fallback string) string {
	if m := strings.TrimSpace(requested); m != "" {
		return m
	}
	return fallback
}
