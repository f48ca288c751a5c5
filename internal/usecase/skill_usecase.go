package usecase

import (
	"context"
	"errors"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/validation"
)

var skillSchema = validation.Schema{
	{Name: "name", Kind: validation.String},
	{Name: "proficiency", Kind: validation.String},
}

type skillUsecase struct {
	repo        domain.SkillRepository
	defaultLogo string
}

func NewSkillUsecase(repo domain.SkillRepository, defaultLogo string) domain.SkillUsecase {
	return &skillUsecase{
		repo:        repo,
		defaultLogo: defaultLogo,
	}
}

func (u *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	return u.repo.List(ctx)
}

func (u *skillUsecase) Get(ctx context.Context, index int) (*domain.Skill, error) {
	skill, err := u.repo.GetByIndex(ctx, index)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Skill not found")
	}
	return skill, err
}

func (u *skillUsecase) Create(ctx context.Context, payload map[string]any, logo string) (int, error) {
	missing, invalid := validation.ValidateTypes(payload, skillSchema)
	if msg := validation.FormatSchemaErrors(missing, invalid); msg != "" {
		return 0, apperror.BadRequest(msg)
	}

	if logo == "" {
		logo = u.defaultLogo
	}
	skill := &domain.Skill{
		Name:        stringField(payload, "name"),
		Proficiency: stringField(payload, "proficiency"),
		Logo:        logo,
	}
	return u.repo.Append(ctx, skill)
}

// Update replaces the whole record; name, proficiency and logo must all be
// present in the payload.
func (u *skillUsecase) Update(ctx context.Context, index int, payload map[string]any) (*domain.Skill, error) {
	missing := validation.ValidateFields([]string{"name", "proficiency", "logo"}, payload)
	if len(missing) > 0 {
		return nil, apperror.BadRequest(validation.RequiredFieldsError(missing))
	}

	skill := &domain.Skill{
		Name:        stringField(payload, "name"),
		Proficiency: stringField(payload, "proficiency"),
		Logo:        stringField(payload, "logo"),
	}
	err := u.repo.Replace(ctx, index, skill)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Skill not found")
	}
	if err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, index int) error {
	err := u.repo.Delete(ctx, index)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Skill entry not found")
	}
	return err
}
