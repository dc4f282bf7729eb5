package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoThumbnailURL(t *testing.T) {
	tests := []struct {
		name  string
		video Video
		want  string
	}{
		{
			name:  "explicit thumbnail wins",
			video: Video{URL: "https://www.youtube.com/embed/abc", Thumbnail: "/thumb.jpg"},
			want:  "/thumb.jpg",
		},
		{
			name:  "derived from youtube embed url",
			video: Video{URL: "https://www.youtube.com/embed/LXb3EKWsInQ"},
			want:  "https://img.youtube.com/vi/LXb3EKWsInQ/maxresdefault.jpg",
		},
		{
			name:  "query string stripped from embed id",
			video: Video{URL: "https://www.youtube.com/embed/LXb3EKWsInQ?autoplay=1"},
			want:  "https://img.youtube.com/vi/LXb3EKWsInQ/maxresdefault.jpg",
		},
		{
			name:  "unknown provider falls back to placeholder",
			video: Video{URL: "https://vimeo.com/12345"},
			want:  PlaceholderThumbnail,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.video.ThumbnailURL())
		})
	}
}
