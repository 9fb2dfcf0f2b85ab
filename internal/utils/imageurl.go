package utils

import "strings"

// PlaceholderImage is served when the upstream record has no usable
// poster or thumbnail value.
const PlaceholderImage = "/static/placeholder-poster.jpg"

// FormatImageURL normalizes an image reference from the upstream API.
// Values may be absolute URLs, root-relative paths, or bare filenames;
// anything not already absolute gets the image CDN host prepended.
func FormatImageURL(raw, host string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + host + "/" + strings.TrimPrefix(raw, "/")
}
