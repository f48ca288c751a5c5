package domain

import "context"

// Skill records carry no id field on the wire; clients address them by
// position, via the ?id= query parameter or the path index.
type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
	Logo        string `json:"logo"`
}

type SkillRepository interface {
	List(ctx context.Context) ([]Skill, error)
	GetByIndex(ctx context.Context, index int) (*Skill, error)
	Append(ctx context.Context, skill *Skill) (int, error)
	Replace(ctx context.Context, index int, skill *Skill) error
	Delete(ctx context.Context, index int) error
}

type SkillUsecase interface {
	List(ctx context.Context) ([]Skill, error)
	Get(ctx context.Context, index int) (*Skill, error)
	Create(ctx context.Context, payload map[string]any, logo string) (int, error)
	// Update replaces the record at index with the payload's name,
	// proficiency and logo values, all of which must be present.
	Update(ctx context.Context, index int, payload map[string]any) (*Skill, error)
	Delete(ctx context.Context, index int) error
}
