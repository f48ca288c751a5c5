package usecase

import (
	"context"

	"go-resume-backend/internal/domain"
)

type spellcheckUsecase struct {
	checker domain.SpellChecker
}

func NewSpellcheckUsecase(checker domain.SpellChecker) domain.SpellcheckUsecase {
	return &spellcheckUsecase{checker: checker}
}

// Check scans the recognized text fields in input order: experiences (title
// then description), then educations (course), then skills (name). Fields
// left empty are skipped.
func (u *spellcheckUsecase) Check(ctx context.Context, req *domain.SpellcheckRequest) ([]domain.SpellcheckResult, error) {
	results := []domain.SpellcheckResult{}
	add := func(text string) {
		if text == "" {
			return
		}
		after := u.checker.Suggest(text)
		if after == nil {
			after = []string{}
		}
		results = append(results, domain.SpellcheckResult{Before: text, After: after})
	}

	for _, exp := range req.Experience {
		add(exp.Title)
		add(exp.Description)
	}
	for _, edu := range req.Education {
		add(edu.Course)
	}
	for _, skill := range req.Skill {
		add(skill.Name)
	}
	return results, nil
}
