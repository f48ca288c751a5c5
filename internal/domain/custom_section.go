package domain

import "context"

// CustomSection is a free-form resume section submitted by the client.
type CustomSection struct {
	ID      int    `json:"id"`
	Title   string `json:"title" form:"title" binding:"required"`
	Content string `json:"content" form:"content" binding:"required"`
}

type CustomSectionRepository interface {
	List(ctx context.Context) ([]CustomSection, error)
	Append(ctx context.Context, section *CustomSection) (int, error)
}

type CustomSectionUsecase interface {
	List(ctx context.Context) ([]CustomSection, error)
	Create(ctx context.Context, section *CustomSection) (int, error)
}
