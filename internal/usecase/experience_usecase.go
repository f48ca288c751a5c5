package usecase

import (
	"context"
	"errors"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/validation"
)

var experienceSchema = validation.Schema{
	{Name: "title", Kind: validation.String},
	{Name: "company", Kind: validation.String},
	{Name: "start_date", Kind: validation.String},
	{Name: "end_date", Kind: validation.String},
	{Name: "description", Kind: validation.String},
}

type experienceUsecase struct {
	repo        domain.ExperienceRepository
	defaultLogo string
}

func NewExperienceUsecase(repo domain.ExperienceRepository, defaultLogo string) domain.ExperienceUsecase {
	return &experienceUsecase{
		repo:        repo,
		defaultLogo: defaultLogo,
	}
}

func (u *experienceUsecase) List(ctx context.Context) ([]domain.Experience, error) {
	return u.repo.List(ctx)
}

func (u *experienceUsecase) Get(ctx context.Context, index int) (*domain.Experience, error) {
	exp, err := u.repo.GetByIndex(ctx, index)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Experience not found")
	}
	return exp, err
}

func (u *experienceUsecase) Create(ctx context.Context, payload map[string]any, logo string) (int, error) {
	missing, invalid := validation.ValidateTypes(payload, experienceSchema)
	if msg := validation.FormatSchemaErrors(missing, invalid); msg != "" {
		return 0, apperror.BadRequest(msg)
	}

	if logo == "" {
		logo = u.defaultLogo
	}
	exp := &domain.Experience{
		Title:       stringField(payload, "title"),
		Company:     stringField(payload, "company"),
		StartDate:   stringField(payload, "start_date"),
		EndDate:     stringField(payload, "end_date"),
		Description: stringField(payload, "description"),
		Logo:        logo,
	}
	return u.repo.Append(ctx, exp)
}

func (u *experienceUsecase) Update(ctx context.Context, index int, payload map[string]any, logo string) (int, error) {
	missing, invalid := validation.ValidateTypes(payload, experienceSchema)
	if msg := validation.FormatSchemaErrors(missing, invalid); msg != "" {
		return 0, apperror.BadRequest(msg)
	}

	existing, err := u.repo.GetByIndex(ctx, index)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, apperror.NotFound("Experience not found")
	}
	if err != nil {
		return 0, err
	}

	if logo == "" {
		logo = existing.Logo
	}
	exp := &domain.Experience{
		Title:       stringField(payload, "title"),
		Company:     stringField(payload, "company"),
		StartDate:   stringField(payload, "start_date"),
		EndDate:     stringField(payload, "end_date"),
		Description: stringField(payload, "description"),
		Logo:        logo,
	}
	if err := u.repo.Replace(ctx, index, exp); err != nil {
		return 0, err
	}
	return index, nil
}

func (u *experienceUsecase) Delete(ctx context.Context, index int) error {
	err := u.repo.Delete(ctx, index)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Experience entry not found")
	}
	return err
}
