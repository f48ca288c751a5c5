package domain

import "context"

type Education struct {
	ID        *int   `json:"id,omitempty"`
	Course    string `json:"course"`
	School    string `json:"school"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Grade     string `json:"grade"`
	Logo      string `json:"logo"`
}

type EducationRepository interface {
	List(ctx context.Context) ([]Education, error)
	GetByIndex(ctx context.Context, index int) (*Education, error)
	Append(ctx context.Context, edu *Education) (int, error)
	Replace(ctx context.Context, index int, edu *Education) error
	Delete(ctx context.Context, index int) error
}

type EducationUsecase interface {
	List(ctx context.Context) ([]Education, error)
	Get(ctx context.Context, index int) (*Education, error)
	Create(ctx context.Context, payload map[string]any, logo string) (int, error)
	Update(ctx context.Context, index int, payload map[string]any, logo string) (int, error)
	Delete(ctx context.Context, index int) error
}
