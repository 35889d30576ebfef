package repository

import (
	"context"
	"fmt"

	"github.com/moodlog/moodlog/internal/model"
)

// CreateEmotion inserts a new emotion entry into the database.
func (r *Repository) CreateEmotion(ctx context.Context, emotion *model.Emotion) error {
	query := `
		INSERT INTO emotions (id, user_id, email, text, detected_emotion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		emotion.ID,
		emotion.UserID,
		emotion.Email,
		emotion.Text,
		emotion.DetectedEmotion,
		emotion.CreatedAt,
		emotion.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create emotion: %w", err)
	}

	return nil
}

// ListEmotionsByUserID retrieves all emotions owned by a user, newest first.
// An empty result is not an error.
func (r *Repository) ListEmotionsByUserID(ctx context.Context, userID string) ([]*model.Emotion, error) {
	query := `
		SELECT id, user_id, email, text, detected_emotion, created_at, updated_at
		FROM emotions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emotions: %w", err)
	}
	defer rows.Close()

	var emotions []*model.Emotion
	for rows.Next() {
		var e model.Emotion
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Email,
			&e.Text,
			&e.DetectedEmotion,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan emotion: %w", err)
		}
		emotions = append(emotions, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating emotions: %w", err)
	}

	return emotions, nil
}

// DeleteEmotion deletes an emotion by ID and reports the number of rows
// removed. Deleting a missing ID is not an error; the count is 0.
func (r *Repository) DeleteEmotion(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM emotions WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete emotion: %w", err)
	}

	return result.RowsAffected(), nil
}

// DeleteEmotionsByUserID deletes every emotion owned by a user and reports
// how many were removed.
func (r *Repository) DeleteEmotionsByUserID(ctx context.Context, userID string) (int64, error) {
	query := `DELETE FROM emotions WHERE user_id = $1`

	result, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete emotions for user: %w", err)
	}

	return result.RowsAffected(), nil
}
