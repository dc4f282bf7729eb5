package domain

import "strings"

// ThumbnailURL returns the thumbnail to display for the video. An explicit
// thumbnail wins; otherwise one is derived from the source URL for known
// providers, falling back to the placeholder asset.
func (v Video) ThumbnailURL() string {
	if v.Thumbnail != "" {
		return v.Thumbnail
	}
	if id := youTubeVideoID(v.URL); id != "" {
		return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
	}
	return PlaceholderThumbnail
}

// youTubeVideoID extracts the video id from a YouTube embed URL
// (".../embed/<id>" with optional query string). Returns "" for anything else.
func youTubeVideoID(url string) string {
	const marker = "/embed/"
	i := strings.Index(url, marker)
	if i < 0 {
		return ""
	}
	id := url[i+len(marker):]
	if j := strings.IndexByte(id, '?'); j >= 0 {
		id = id[:j]
	}
	return id
}
