package usecase

import (
	"context"
	"errors"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/validation"
)

var educationSchema = validation.Schema{
	{Name: "course", Kind: validation.String},
	{Name: "school", Kind: validation.String},
	{Name: "start_date", Kind: validation.String},
	{Name: "end_date", Kind: validation.String},
	{Name: "grade", Kind: validation.String},
}

type educationUsecase struct {
	repo        domain.EducationRepository
	defaultLogo string
}

func NewEducationUsecase(repo domain.EducationRepository, defaultLogo string) domain.EducationUsecase {
	return &educationUsecase{
		repo:        repo,
		defaultLogo: defaultLogo,
	}
}

func (u *educationUsecase) List(ctx context.Context) ([]domain.Education, error) {
	return u.repo.List(ctx)
}

func (u *educationUsecase) Get(ctx context.Context, index int) (*domain.Education, error) {
	edu, err := u.repo.GetByIndex(ctx, index)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Education not found")
	}
	return edu, err
}

func (u *educationUsecase) Create(ctx context.Context, payload map[string]any, logo string) (int, error) {
	missing, invalid := validation.ValidateTypes(payload, educationSchema)
	if msg := validation.FormatSchemaErrors(missing, invalid); msg != "" {
		return 0, apperror.BadRequest(msg)
	}

	if logo == "" {
		logo = u.defaultLogo
	}
	edu := &domain.Education{
		Course:    stringField(payload, "course"),
		School:    stringField(payload, "school"),
		StartDate: stringField(payload, "start_date"),
		EndDate:   stringField(payload, "end_date"),
		Grade:     stringField(payload, "grade"),
		Logo:      logo,
	}
	return u.repo.Append(ctx, edu)
}

func (u *educationUsecase) Update(ctx context.Context, index int, payload map[string]any, logo string) (int, error) {
	missing, invalid := validation.ValidateTypes(payload, educationSchema)
	if msg := validation.FormatSchemaErrors(missing, invalid); msg != "" {
		return 0, apperror.BadRequest(msg)
	}

	existing, err := u.repo.GetByIndex(ctx, index)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, apperror.NotFound("Education not found")
	}
	if err != nil {
		return 0, err
	}

	if logo == "" {
		logo = existing.Logo
	}
	edu := &domain.Education{
		Course:    stringField(payload, "course"),
		School:    stringField(payload, "school"),
		StartDate: stringField(payload, "start_date"),
		EndDate:   stringField(payload, "end_date"),
		Grade:     stringField(payload, "grade"),
		Logo:      logo,
	}
	if err := u.repo.Replace(ctx, index, edu); err != nil {
		return 0, err
	}
	return index, nil
}

func (u *educationUsecase) Delete(ctx context.Context, index int) error {
	err := u.repo.Delete(ctx, index)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Education entry not found")
	}
	return err
}
