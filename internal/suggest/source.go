package suggest

import "strings"

const (
	dependencyDir = "node_modules/"
	typesScope    = "@types/"
)

// CleanSource normalizes a completion source to a bare module specifier.
// Paths without a dependency-directory marker pass through unchanged. Paths
// through node_modules collapse to the package name after the last marker,
// keeping both segments of scoped packages; a @types/ package collapses to
// the runtime package it describes.
func CleanSource(source string) string {
	idx := strings.LastIndex(source, dependencyDir)
	if idx == -1 {
		return source
	}

	rest := source[idx+len(dependencyDir):]
	parts := strings.Split(rest, "/")
	name := parts[0]
	if strings.HasPrefix(name, "@") && len(parts) > 1 {
		name = parts[0] + "/" + parts[1]
	}
	if strings.HasPrefix(name, typesScope) {
		name = strings.TrimPrefix(name, typesScope)
	}
	return name
}
