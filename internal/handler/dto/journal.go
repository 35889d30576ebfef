// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"strings"
	"time"

	"github.com/moodlog/moodlog/internal/model"
)

// RegisterUserRequest represents the request body for registering a user.
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MissingField returns the error message for the first missing required
// field, or "" when the request is complete.
func (r *RegisterUserRequest) MissingField() string {
	if strings.TrimSpace(r.Name) == "" {
		return "Name required"
	}
	if strings.TrimSpace(r.Email) == "" {
		return "Email required"
	}
	return ""
}

// CreateEmotionRequest represents the request body for creating an emotion entry.
type CreateEmotionRequest struct {
	Email           string `json:"email"`
	Text            string `json:"text"`
	DetectedEmotion string `json:"detectedEmotion"`
}

// MissingField returns the error message for the first missing required
// field, or "" when the request is complete.
func (r *CreateEmotionRequest) MissingField() string {
	if strings.TrimSpace(r.Email) == "" {
		return "Email required"
	}
	if strings.TrimSpace(r.Text) == "" {
		return "Text required"
	}
	if strings.TrimSpace(r.DetectedEmotion) == "" {
		return "Detected emotion required"
	}
	return ""
}

// TokenRequest represents the request body for issuing a token.
type TokenRequest struct {
	Email string `json:"email"`
}

// MissingField returns the error message when the email is absent.
func (r *TokenRequest) MissingField() string {
	if strings.TrimSpace(r.Email) == "" {
		return "Email required"
	}
	return ""
}

// TokenResponse carries an issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// DeleteResponse confirms a delete operation with the number of rows removed.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmotionResponse represents an emotion entry in API responses.
type EmotionResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Email           string    `json:"email"`
	Text            string    `json:"text"`
	DetectedEmotion string    `json:"detectedEmotion"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToEmotionResponse converts an Emotion model to EmotionResponse DTO.
func ToEmotionResponse(emotion *model.Emotion) *EmotionResponse {
	return &EmotionResponse{
		ID:              emotion.ID,
		UserID:          emotion.UserID,
		Email:           emotion.Email,
		Text:            emotion.Text,
		DetectedEmotion: emotion.DetectedEmotion,
		CreatedAt:       emotion.CreatedAt,
		UpdatedAt:       emotion.UpdatedAt,
	}
}

// ToEmotionListResponse converts a slice of Emotion models.
// A user with no entries gets an empty array, never null.
func ToEmotionListResponse(emotions []*model.Emotion) []EmotionResponse {
	responses := make([]EmotionResponse, len(emotions))
	for i, e := range emotions {
		responses[i] = *ToEmotionResponse(e)
	}
	return responses
}
