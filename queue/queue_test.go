package queue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func track(id string, votes int) Track {
	return Track{
		ID:      id,
		Title:   "Track " + id,
		VideoID: "video-" + id,
		Votes:   votes,
		AddedBy: "tester",
	}
}

func TestAppend(t *testing.T) {
	q := New()

	q.Append(track("a", 0))
	q.Append(track("b", 2))

	tracks := q.Tracks()
	assert.Equal(t, 2, len(tracks))
	assert.Equal(t, "a", tracks[0].ID)
	assert.Equal(t, "b", tracks[1].ID)
}

func TestAppend_DuplicateIDIgnored(t *testing.T) {
	q := New()

	q.Append(track("a", 0))
	q.Append(track("a", 3))

	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 0, q.Tracks()[0].Votes)
}

func TestAdjustVote(t *testing.T) {
	q := New()
	q.Append(track("a", 1))

	q.AdjustVote("a", 1)
	assert.Equal(t, 2, q.Tracks()[0].Votes)

	q.AdjustVote("a", -1)
	assert.Equal(t, 1, q.Tracks()[0].Votes)
}

func TestAdjustVote_NeverNegative(t *testing.T) {
	q := New()
	q.Append(track("a", 1))

	q.AdjustVote("a", -1)
	q.AdjustVote("a", -1)
	q.AdjustVote("a", -5)

	assert.Equal(t, 0, q.Tracks()[0].Votes)
}

func TestAdjustVote_UnknownID(t *testing.T) {
	q := New()
	q.Append(track("a", 1))

	q.AdjustVote("missing", 3)

	assert.Equal(t, 1, q.Tracks()[0].Votes)
}

func TestRemove(t *testing.T) {
	q := New()
	q.Append(track("a", 0))
	q.Append(track("b", 0))

	q.Remove("a")

	tracks := q.Tracks()
	assert.Equal(t, 1, len(tracks))
	assert.Equal(t, "b", tracks[0].ID)
}

func TestRemove_UnknownID(t *testing.T) {
	q := New()
	q.Append(track("a", 0))

	assert.NotPanics(t, func() {
		q.Remove("missing")
	})
	assert.Equal(t, 1, q.Len())
}

func TestRanked_ByVotesDescending(t *testing.T) {
	q := New()
	q.Append(track("low", 1))
	q.Append(track("high", 9))
	q.Append(track("mid", 4))

	ranked := q.Ranked()

	assert.Equal(t, "high", ranked[0].ID)
	assert.Equal(t, "mid", ranked[1].ID)
	assert.Equal(t, "low", ranked[2].ID)
}

func TestRanked_StableOnTies(t *testing.T) {
	q := New()
	for i := 0; i < 5; i++ {
		q.Append(track(fmt.Sprintf("t%d", i), 0))
	}

	// Vote everything up and back down so all counts end up tied again.
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("t%d", i)
		q.AdjustVote(id, 1+i)
		q.AdjustVote(id, -(1 + i))
	}

	ranked := q.Ranked()
	for i := 0; i < 5; i++ {
		assert.Equal(t, fmt.Sprintf("t%d", i), ranked[i].ID)
	}
}

func TestRanked_DoesNotMutateQueue(t *testing.T) {
	q := New()
	q.Append(track("a", 1))
	q.Append(track("b", 5))

	_ = q.Ranked()

	tracks := q.Tracks()
	assert.Equal(t, "a", tracks[0].ID)
	assert.Equal(t, "b", tracks[1].ID)
}

func TestPlayNext_EmptyQueue(t *testing.T) {
	q := New()

	next := q.PlayNext()

	assert.Nil(t, next)
	assert.Nil(t, q.NowPlaying())
}

func TestPlayNext_TakesRankedHead(t *testing.T) {
	q := New()
	q.Append(track("a", 2))
	q.Append(track("b", 7))
	q.Append(track("c", 4))

	next := q.PlayNext()

	assert.NotNil(t, next)
	assert.Equal(t, "b", next.ID)
	assert.Equal(t, "b", q.NowPlaying().ID)

	for _, remaining := range q.Tracks() {
		assert.NotEqual(t, "b", remaining.ID)
	}
	assert.Equal(t, 2, q.Len())
}

func TestPlaySpecific(t *testing.T) {
	q := New()
	q.Append(track("a", 2))
	q.Append(track("b", 7))

	played := q.PlaySpecific("a")

	assert.NotNil(t, played)
	assert.Equal(t, "a", q.NowPlaying().ID)
	assert.Equal(t, 1, q.Len())
}

func TestPlaySpecific_UnknownID(t *testing.T) {
	q := New()
	q.Append(track("a", 2))

	played := q.PlaySpecific("missing")

	assert.Nil(t, played)
	assert.Nil(t, q.NowPlaying())
	assert.Equal(t, 1, q.Len())
}

func TestClear(t *testing.T) {
	q := New()
	q.Append(track("a", 2))
	q.PlayNext()
	q.Append(track("b", 0))

	q.Clear()

	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.NowPlaying())
}

func TestSetUserName_EmptyFallsBack(t *testing.T) {
	q := New()

	q.SetUserName("dj")
	assert.Equal(t, "dj", q.UserName())

	q.SetUserName("")
	assert.Equal(t, "Anonymous", q.UserName())
}
