package yt

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/Aryanboii/Muzic/redis_client"
)

type Manager struct {
	redis        *redis.Client
	cacheYoutube time.Duration
}

// NewManager creates a Manager with Redis metadata cache
func NewManager(rdb *redis.Client) *Manager {
	ttl := time.Duration(viper.GetInt("cache.youtube")) * time.Second
	return &Manager{
		redis:        rdb,
		cacheYoutube: ttl,
	}
}

// GetVideoMetadata fetches YouTube video metadata given videoID
func (m *Manager) GetVideoMetadata(videoID string) (*youtube.Video, error) {
	// Try Redis
	if m.redis != nil {
		cached, err := m.redis.Get(redis_client.Ctx, "ytmeta:"+videoID).Result()
		if err == nil && cached != "" {
			var video youtube.Video
			json.Unmarshal([]byte(cached), &video)
			return &video, nil
		}
	}

	// Fetch from Youtube
	client := youtube.Client{}
	video, err := client.GetVideo(videoID)
	if err != nil {
		return nil, errors.Wrapf(err, "metadata lookup failed for %s", videoID)
	}

	// Store in Redis
	if m.redis != nil {
		data, _ := json.Marshal(video)
		m.redis.Set(redis_client.Ctx, "ytmeta:"+videoID, data, m.cacheYoutube)
	}

	return video, nil
}

// StreamImages picks the small and big thumbnail for a stream: the
// second-largest candidate and the largest. With a single candidate both
// use it, with none both fall back to the standard thumbnail URL.
func StreamImages(video *youtube.Video, videoID string) (small string, big string) {
	thumbs := make([]youtube.Thumbnail, len(video.Thumbnails))
	copy(thumbs, video.Thumbnails)
	sort.Slice(thumbs, func(i, j int) bool {
		return thumbs[i].Width < thumbs[j].Width
	})

	switch {
	case len(thumbs) > 1:
		small = thumbs[len(thumbs)-2].URL
		big = thumbs[len(thumbs)-1].URL
	case len(thumbs) == 1:
		small = thumbs[0].URL
		big = thumbs[0].URL
	}

	if small == "" {
		small = ThumbnailURL(videoID)
	}
	if big == "" {
		big = ThumbnailURL(videoID)
	}
	return small, big
}
