package queue

import (
	"encoding/json"

	"github.com/Strum355/log"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Aryanboii/Muzic/redis_client"
)

const (
	keyQueue    = "songQueue"
	keyCurrent  = "currentVideo"
	keyUserName = "userName"
	keyVisited  = "hasVisitedBefore"
)

// ErrNotFound is returned by a KV when a key has no value.
var ErrNotFound = errors.New("key not found")

// KV is the persistent key-value area queue state lives in.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// RedisKV stores queue state in Redis.
type RedisKV struct {
	rdb *redis.Client
}

func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

func (r *RedisKV) Get(key string) (string, error) {
	val, err := r.rdb.Get(redis_client.Ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return val, err
}

func (r *RedisKV) Set(key, value string) error {
	return r.rdb.Set(redis_client.Ctx, key, value, 0).Err()
}

func (r *RedisKV) Delete(key string) error {
	return r.rdb.Del(redis_client.Ctx, key).Err()
}

// MemoryKV is an in-process KV for tests.
type MemoryKV struct {
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string]string{}}
}

func (m *MemoryKV) Get(key string) (string, error) {
	val, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

// Three demonstration tracks shown to first-time visitors.
var defaultTracks = []*Track{
	{
		ID:        "default-1",
		Title:     "Hanumankind - Run It Up (Prod. By Kalmi) | (Official Music Video)",
		Thumbnail: "https://img.youtube.com/vi/MbJ72KO5khs/mqdefault.jpg",
		VideoID:   "MbJ72KO5khs",
		Votes:     5,
		AddedBy:   "vibe check",
		Duration:  "Unknown",
		Author:    "Hanumankind",
	},
	{
		ID:        "default-2",
		Title:     "Shubh - Together (Official Music Video)",
		Thumbnail: "https://img.youtube.com/vi/7iy8iB8tu5c/mqdefault.jpg",
		VideoID:   "7iy8iB8tu5c",
		Votes:     3,
		AddedBy:   "vibe check",
		Duration:  "Unknown",
		Author:    "SHUBH",
	},
	{
		ID:        "default-3",
		Title:     "Shubh - Supreme (Official Music Video)",
		Thumbnail: "https://img.youtube.com/vi/QRwLbf3PwO8/mqdefault.jpg",
		VideoID:   "QRwLbf3PwO8",
		Votes:     7,
		AddedBy:   "vibe check",
		Duration:  "Unknown",
		Author:    "SHUBH",
	},
}

// Store loads and saves queue state at explicit lifecycle points. The very
// first load seeds the demonstration tracks; later empty states stay empty,
// told apart by the visited flag. Broken state degrades to defaults instead
// of failing.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load rebuilds a Queue from the KV area.
func (s *Store) Load() *Queue {
	q := New()

	var tracks []*Track
	raw, err := s.kv.Get(keyQueue)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal([]byte(raw), &tracks); jsonErr != nil {
			log.WithError(jsonErr).Error("Stored queue is corrupt, starting fresh")
			tracks = s.firstRunTracks()
		}
	case errors.Is(err, ErrNotFound):
		tracks = s.firstRunTracks()
	default:
		log.WithError(err).Error("Could not load stored queue, starting fresh")
		tracks = s.firstRunTracks()
	}

	var nowPlaying *Track
	if raw, err := s.kv.Get(keyCurrent); err == nil {
		current := &Track{}
		if jsonErr := json.Unmarshal([]byte(raw), current); jsonErr != nil {
			log.WithError(jsonErr).Error("Stored current video is corrupt, clearing it")
		} else {
			nowPlaying = current
		}
	}

	userName, _ := s.kv.Get(keyUserName)

	q.restore(tracks, nowPlaying, userName)
	return q
}

// firstRunTracks seeds the demo tracks on the first-ever visit and marks the
// visit, so a legitimately emptied queue is not re-seeded.
func (s *Store) firstRunTracks() []*Track {
	if _, err := s.kv.Get(keyVisited); err == nil {
		return nil
	}
	if err := s.kv.Set(keyVisited, "true"); err != nil {
		log.WithError(err).Error("Could not persist visited flag")
	}
	tracks := make([]*Track, len(defaultTracks))
	for i, t := range defaultTracks {
		track := *t
		tracks[i] = &track
	}
	return tracks
}

// Save writes the queue, now-playing slot and user name back to the KV area.
func (s *Store) Save(q *Queue) {
	tracks := q.Tracks()
	data, err := json.Marshal(tracks)
	if err == nil {
		err = s.kv.Set(keyQueue, string(data))
	}
	if err != nil {
		log.WithError(err).Error("Could not persist queue")
	}

	if current := q.NowPlaying(); current != nil {
		data, err := json.Marshal(current)
		if err == nil {
			err = s.kv.Set(keyCurrent, string(data))
		}
		if err != nil {
			log.WithError(err).Error("Could not persist current video")
		}
	} else if err := s.kv.Delete(keyCurrent); err != nil {
		log.WithError(err).Error("Could not clear current video")
	}

	if name := q.UserName(); name != "Anonymous" {
		if err := s.kv.Set(keyUserName, name); err != nil {
			log.WithError(err).Error("Could not persist user name")
		}
	}
}
