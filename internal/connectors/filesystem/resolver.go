package filesystem

import "strings"

// ResolvePath converts a manifest location to a local path.
// Handles file:// URIs and bare paths.
func ResolvePath(location string) string {
	// Strip file:// prefix for local paths
	if strings.HasPrefix(location, "file://") {
		return strings.TrimPrefix(location, "file://")
	}
	// Bare paths pass through unchanged
	return location
}
