package yt

import (
	"strings"
	"sync"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/spf13/viper"

	"github.com/Aryanboii/Muzic/utils"
)

// Preview is the metadata shown for a URL before it is queued.
type Preview struct {
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Author    string `json:"author"`
	Duration  string `json:"duration"`
}

type MetadataSource interface {
	GetVideoMetadata(videoID string) (*youtube.Video, error)
}

// Previewer resolves a typed-in URL into a Preview after the input has been
// quiet for the debounce period. In-flight fetches are never cancelled: a
// superseded fetch that completes last still overwrites the preview slot,
// matching the dashboard it was ported from.
type Previewer struct {
	source   MetadataSource
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	preview *Preview
	loading bool
}

// NewPreviewer creates a Previewer with the debounce period from config.
func NewPreviewer(source MetadataSource) *Previewer {
	return &Previewer{
		source:   source,
		debounce: time.Duration(viper.GetInt("preview.debounce.ms")) * time.Millisecond,
	}
}

// SetURL restarts the debounce timer for a new input value. An empty or
// unresolvable URL clears the preview slot instead.
func (p *Previewer) SetURL(rawURL string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}

	videoID, err := ExtractVideoID(rawURL)
	if err != nil || strings.TrimSpace(rawURL) == "" {
		p.preview = nil
		return
	}

	p.timer = time.AfterFunc(p.debounce, func() {
		p.fetch(videoID)
	})
}

func (p *Previewer) fetch(videoID string) {
	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	video, err := p.source.GetVideoMetadata(videoID)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false

	if err != nil {
		// Degrade to basic info when the lookup fails.
		p.preview = &Preview{
			VideoID:   videoID,
			Title:     "YouTube Video " + videoID,
			Thumbnail: ThumbnailURL(videoID),
			Author:    "Unknown Channel",
			Duration:  "Unknown",
		}
		return
	}

	p.preview = &Preview{
		VideoID:   videoID,
		Title:     video.Title,
		Thumbnail: ThumbnailURL(videoID),
		Author:    video.Author,
		Duration:  utils.FormatTrackDuration(video.Duration),
	}
}

// Preview returns the current preview slot, nil if there is none.
func (p *Previewer) Preview() *Preview {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.preview
}

// Loading reports whether a fetch is in flight.
func (p *Previewer) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Take returns the current preview and clears the slot, for handing the
// previewed video over to the queue.
func (p *Previewer) Take() *Preview {
	p.mu.Lock()
	defer p.mu.Unlock()
	preview := p.preview
	p.preview = nil
	return preview
}
