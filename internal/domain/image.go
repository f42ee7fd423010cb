package domain

import "strings"

// ImageURL resolves an image reference against the API base URL using the
// /storage/{path} convention. Absolute URLs are returned unchanged.
func ImageURL(baseURL, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	base := strings.TrimRight(baseURL, "/")
	path := strings.TrimPrefix(ref, "/")
	path = strings.TrimPrefix(path, "storage/")
	return base + "/storage/" + path
}
