package thumbnail

import (
	"fmt"
	"regexp"
)

// DefaultQuality is the YouTube preview quality tier used when callers do not
// ask for a specific one.
const DefaultQuality = "hqdefault"

// patterns are tried in order; the first match wins.
var patterns = []*regexp.Regexp{
	// Standard link: https://www.youtube.com/watch?v=VIDEO_ID
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]+)`),

	// Short link: https://youtu.be/VIDEO_ID
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([a-zA-Z0-9_-]+)`),

	// Embed link: https://www.youtube.com/embed/VIDEO_ID
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([a-zA-Z0-9_-]+)`),

	// Watch link with other query parameters before v=
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?.*v=([a-zA-Z0-9_-]+)`),
}

// ExtractVideoID extracts the YouTube video identifier from any recognized
// link form. It returns false if the URL is empty or matches no pattern.
func ExtractVideoID(videoURL string) (string, bool) {
	if videoURL == "" {
		return "", false
	}
	for _, p := range patterns {
		if m := p.FindStringSubmatch(videoURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Resolve builds a preview image URL for the given video link and quality
// tier. An empty quality falls back to DefaultQuality. It returns false if no
// video identifier could be extracted.
func Resolve(videoURL, quality string) (string, bool) {
	id, ok := ExtractVideoID(videoURL)
	if !ok {
		return "", false
	}
	if quality == "" {
		quality = DefaultQuality
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", id, quality), true
}
