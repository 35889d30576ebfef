package model

import "time"

// Emotion represents a single journal entry owned by a user.
//
// Email is a denormalized copy of the owner's stored email at creation
// time; it is never re-synced. DetectedEmotion is an opaque label and is
// not validated against any fixed set.
type Emotion struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Email           string    `json:"email"`
	Text            string    `json:"text"`
	DetectedEmotion string    `json:"detectedEmotion"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
