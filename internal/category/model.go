package category

import (
	"time"

	"github.com/google/uuid"
)

// Category groups tasks. Categories are never updated or deleted.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsSystem  bool      `json:"isSystem"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateRequest represents the create category request body
type CreateRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
