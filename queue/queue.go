package queue

import (
	"sort"
	"sync"
)

// Track is a single queued video submission.
type Track struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	VideoID   string `json:"videoId"`
	Votes     int    `json:"votes"`
	AddedBy   string `json:"addedBy"`
	Duration  string `json:"duration"`
	Author    string `json:"author,omitempty"`
}

// Queue holds the pending tracks, their votes and the single now-playing
// slot. All methods are safe for concurrent use.
type Queue struct {
	mu         sync.Mutex
	tracks     []*Track
	nowPlaying *Track
	userName   string
}

func New() *Queue {
	return &Queue{userName: "Anonymous"}
}

// Append adds a track to the end of the queue. A track whose ID is already
// queued is ignored.
func (q *Queue) Append(track Track) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, t := range q.tracks {
		if t.ID == track.ID {
			return
		}
	}
	t := track
	q.tracks = append(q.tracks, &t)
}

// AdjustVote changes a track's vote count by delta, clamped at zero.
// Unknown IDs are ignored.
func (q *Queue) AdjustVote(trackID string, delta int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, t := range q.tracks {
		if t.ID == trackID {
			t.Votes += delta
			if t.Votes < 0 {
				t.Votes = 0
			}
			return
		}
	}
}

// Remove deletes a track from the queue. Unknown IDs are ignored.
func (q *Queue) Remove(trackID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.removeLocked(trackID)
}

func (q *Queue) removeLocked(trackID string) {
	for i, t := range q.tracks {
		if t.ID == trackID {
			q.tracks = append(q.tracks[:i], q.tracks[i+1:]...)
			return
		}
	}
}

// Clear empties the queue and the now-playing slot.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tracks = nil
	q.nowPlaying = nil
}

// Ranked returns the tracks ordered by votes, highest first. Tracks with
// equal votes keep their insertion order.
func (q *Queue) Ranked() []Track {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.rankedLocked()
}

func (q *Queue) rankedLocked() []Track {
	ranked := make([]Track, len(q.tracks))
	for i, t := range q.tracks {
		ranked[i] = *t
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})
	return ranked
}

// PlayNext moves the top-ranked track into the now-playing slot and removes
// it from the queue. Does nothing when the queue is empty.
func (q *Queue) PlayNext() *Track {
	q.mu.Lock()
	defer q.mu.Unlock()
	ranked := q.rankedLocked()
	if len(ranked) == 0 {
		return nil
	}
	next := ranked[0]
	q.removeLocked(next.ID)
	q.nowPlaying = &next
	return &next
}

// PlaySpecific moves the named track into the now-playing slot. A track not
// currently queued is silently ignored.
func (q *Queue) PlaySpecific(trackID string) *Track {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, t := range q.tracks {
		if t.ID == trackID {
			track := *t
			q.removeLocked(trackID)
			q.nowPlaying = &track
			return &track
		}
	}
	return nil
}

// NowPlaying returns a copy of the current track, nil when nothing plays.
func (q *Queue) NowPlaying() *Track {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.nowPlaying == nil {
		return nil
	}
	track := *q.nowPlaying
	return &track
}

// ClearNowPlaying empties the now-playing slot.
func (q *Queue) ClearNowPlaying() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nowPlaying = nil
}

// Tracks returns the queue contents in insertion order.
func (q *Queue) Tracks() []Track {
	q.mu.Lock()
	defer q.mu.Unlock()
	tracks := make([]Track, len(q.tracks))
	for i, t := range q.tracks {
		tracks[i] = *t
	}
	return tracks
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tracks)
}

func (q *Queue) UserName() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.userName
}

func (q *Queue) SetUserName(name string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if name == "" {
		name = "Anonymous"
	}
	q.userName = name
}

// restore replaces the queue state wholesale; used by Store on load.
func (q *Queue) restore(tracks []*Track, nowPlaying *Track, userName string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tracks = tracks
	q.nowPlaying = nowPlaying
	if userName != "" {
		q.userName = userName
	}
}
