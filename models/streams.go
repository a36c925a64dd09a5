package models

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrAlreadyVoted is returned when a (user, stream) pair has voted before.
var ErrAlreadyVoted = errors.New("already voted for this stream")

// ErrUnknownStream is returned when a vote names a stream that does not exist.
var ErrUnknownStream = errors.New("no such stream")

// StreamWithUpvotes is a stream together with its vote count, derived at read
// time from the upvote rows.
type StreamWithUpvotes struct {
	Stream
	Upvotes int64 `json:"upvotes"`
}

// CreateStream persists a new stream as a single insert. Nothing is left
// behind on failure.
func CreateStream(db *gorm.DB, stream *Stream) error {
	if err := db.Create(stream).Error; err != nil {
		return errors.Wrap(err, "stream creation failed")
	}
	return nil
}

// StreamsByCreator returns all streams registered by a creator.
func StreamsByCreator(db *gorm.DB, creatorID string) ([]Stream, error) {
	streams := []Stream{}
	if err := db.Where("user_id = ?", creatorID).Find(&streams).Error; err != nil {
		return nil, errors.Wrap(err, "stream listing failed")
	}
	return streams, nil
}

// StreamsWithUpvotes returns a creator's streams, each with its upvote
// cardinality counted at read time.
func StreamsWithUpvotes(db *gorm.DB, creatorID string) ([]StreamWithUpvotes, error) {
	streams := []StreamWithUpvotes{}
	err := db.Model(&Stream{}).
		Select("streams.*, count(upvotes.id) as upvotes").
		Joins("LEFT JOIN upvotes ON upvotes.stream_id = streams.id").
		Where("streams.user_id = ?", creatorID).
		Group("streams.id").
		Find(&streams).Error
	if err != nil {
		return nil, errors.Wrap(err, "stream vote aggregation failed")
	}
	return streams, nil
}

// RecordUpvote inserts the (user, stream) vote row. The unique index rejects
// a second vote by the same user for the same stream; that surfaces as
// ErrAlreadyVoted rather than double-counting.
func RecordUpvote(db *gorm.DB, userID, streamID string) error {
	var stream Stream
	if err := db.Select("id").First(&stream, "id = ?", streamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownStream
		}
		return errors.Wrap(err, "stream lookup failed")
	}
	vote := &Upvote{UserID: userID, StreamID: streamID}
	if err := db.Create(vote).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyVoted
		}
		return errors.Wrap(err, "vote recording failed")
	}
	return nil
}
