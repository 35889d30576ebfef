// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/moodlog/moodlog/internal/model"
	"github.com/moodlog/moodlog/internal/repository"
)

// Service errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
)

// JournalService handles user registration and emotion journal logic.
type JournalService struct {
	repo *repository.Repository
}

// NewJournalService creates a new JournalService.
func NewJournalService(repo *repository.Repository) *JournalService {
	return &JournalService{repo: repo}
}

// RegisterUser creates a new user. The email must not already be
// registered; the database unique index decides the winner when two
// registrations race on the same address.
func (s *JournalService) RegisterUser(ctx context.Context, name, email string) (*model.User, error) {
	now := time.Now().UTC()
	user := &model.User{
		ID:        ulid.Make().String(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

// GetUserByEmail looks up a user by exact email match.
func (s *JournalService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListEmotions returns every emotion owned by the user registered under
// email, ordered newest first. An empty journal is a valid result.
func (s *JournalService) ListEmotions(ctx context.Context, email string) ([]*model.Emotion, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	emotions, err := s.repo.ListEmotionsByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emotions: %w", err)
	}
	return emotions, nil
}

// CreateEmotionInput defines input for creating an emotion entry.
type CreateEmotionInput struct {
	Email           string
	Text            string
	DetectedEmotion string
}

// CreateEmotion persists a new emotion entry for an existing user.
// The entry's email is copied from the stored user record, not from the
// request input.
func (s *JournalService) CreateEmotion(ctx context.Context, input CreateEmotionInput) (*model.Emotion, error) {
	user, err := s.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	emotion := &model.Emotion{
		ID:              ulid.Make().String(),
		UserID:          user.ID,
		Email:           user.Email,
		Text:            input.Text,
		DetectedEmotion: input.DetectedEmotion,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateEmotion(ctx, emotion); err != nil {
		return nil, fmt.Errorf("failed to create emotion: %w", err)
	}

	return emotion, nil
}

// DeleteEmotion removes a single emotion by ID and reports how many rows
// were removed. A missing ID deletes nothing and is still a success.
func (s *JournalService) DeleteEmotion(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.DeleteEmotion(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete emotion: %w", err)
	}
	return deleted, nil
}

// DeleteAllEmotions removes every emotion owned by the user registered
// under email and reports how many were removed.
func (s *JournalService) DeleteAllEmotions(ctx context.Context, email string) (int64, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteEmotionsByUserID(ctx, user.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete emotions: %w", err)
	}
	return deleted, nil
}
