// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered journal owner.
// JSON field names follow the public API contract (camelCase).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
