package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StreamTypeYoutube = "Youtube"

type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Provider string `gorm:"not null" json:"provider"`
}

type Stream struct {
	ID          string `gorm:"primaryKey" json:"id"`
	UserID      string `gorm:"index;not null" json:"userId"`
	URL         string `gorm:"not null" json:"url"`
	ExtractedID string `gorm:"not null" json:"extractedId"`
	Type        string `gorm:"not null" json:"type"`
	Title       string `json:"title"`
	SmallImg    string `json:"smallImg"`
	BigImg      string `json:"bigImg"`
}

// Upvote records one user's single positive vote for a stream. The composite
// unique index is the only thing preventing double votes under concurrency.
type Upvote struct {
	ID       string `gorm:"primaryKey" json:"id"`
	UserID   string `gorm:"uniqueIndex:idx_upvote_user_stream;not null" json:"userId"`
	StreamID string `gorm:"uniqueIndex:idx_upvote_user_stream;not null" json:"streamId"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (s *Stream) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (u *Upvote) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Migrate creates or updates the tables for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Stream{}, &Upvote{})
}
