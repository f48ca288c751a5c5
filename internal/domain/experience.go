package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("record not found")

type Experience struct {
	ID          *int   `json:"id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

type ExperienceRepository interface {
	List(ctx context.Context) ([]Experience, error)
	GetByIndex(ctx context.Context, index int) (*Experience, error)
	Append(ctx context.Context, exp *Experience) (int, error)
	Replace(ctx context.Context, index int, exp *Experience) error
	Delete(ctx context.Context, index int) error
}

type ExperienceUsecase interface {
	List(ctx context.Context) ([]Experience, error)
	Get(ctx context.Context, index int) (*Experience, error)
	// Create validates the payload, applies the logo filename (default when
	// empty) and appends a new record, returning its index.
	Create(ctx context.Context, payload map[string]any, logo string) (int, error)
	// Update validates the payload and replaces the record at index. An empty
	// logo keeps the stored one.
	Update(ctx context.Context, index int, payload map[string]any, logo string) (int, error)
	Delete(ctx context.Context, index int) error
}
