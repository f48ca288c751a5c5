package usecase

import (
	"context"
	"strings"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

type customSectionUsecase struct {
	repo domain.CustomSectionRepository
}

func NewCustomSectionUsecase(repo domain.CustomSectionRepository) domain.CustomSectionUsecase {
	return &customSectionUsecase{repo: repo}
}

func (u *customSectionUsecase) List(ctx context.Context) ([]domain.CustomSection, error) {
	return u.repo.List(ctx)
}

func (u *customSectionUsecase) Create(ctx context.Context, section *domain.CustomSection) (int, error) {
	// Additional validation beyond binding
	if strings.TrimSpace(section.Title) == "" {
		return 0, apperror.BadRequest("title is required")
	}
	if strings.TrimSpace(section.Content) == "" {
		return 0, apperror.BadRequest("content is required")
	}
	return u.repo.Append(ctx, section)
}
