package yt

import (
	"regexp"

	"github.com/pkg/errors"
)

// ErrNoVideoID is returned when no supported URL form matches.
var ErrNoVideoID = errors.New("no video id found in url")

// Supported URL forms, tried in order. These mirror what the dashboard
// accepts: watch-query, short-link, embed, /v/ and alternate-query forms.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&\n?#]+)`),
	regexp.MustCompile(`youtu\.be/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*&v=([^&\n?#]+)`),
}

// Stream submission only accepts the canonical watch form. Narrower than
// idPatterns on purpose; see DESIGN.md.
var watchPattern = regexp.MustCompile(`^https://www\.youtube\.com/watch\?v=([\w-]{11})`)

// ExtractVideoID pulls a video ID out of any supported URL form. The first
// matching pattern wins.
func ExtractVideoID(rawURL string) (string, error) {
	if rawURL == "" {
		return "", ErrNoVideoID
	}
	for _, pattern := range idPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil && m[1] != "" {
			return m[1], nil
		}
	}
	return "", ErrNoVideoID
}

// ExtractWatchID accepts only the canonical https://www.youtube.com/watch?v=
// form with an 11-character ID.
func ExtractWatchID(rawURL string) (string, error) {
	if m := watchPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1], nil
	}
	return "", ErrNoVideoID
}

// WatchURL rebuilds the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ThumbnailURL returns the medium-quality thumbnail for a video ID.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/mqdefault.jpg"
}
