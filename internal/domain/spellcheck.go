package domain

import "context"

// SpellcheckRequest carries partial resume records whose text fields should
// be checked. Only the recognized fields below are scanned.
type SpellcheckRequest struct {
	Experience []SpellcheckExperience `json:"experience"`
	Education  []SpellcheckEducation  `json:"education"`
	Skill      []SpellcheckSkill      `json:"skill"`
}

type SpellcheckExperience struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SpellcheckEducation struct {
	Course string `json:"course"`
}

type SpellcheckSkill struct {
	Name string `json:"name"`
}

// SpellcheckResult pairs a submitted text with its candidate corrections.
// After is empty, never null, when the checker has no candidates.
type SpellcheckResult struct {
	Before string   `json:"before"`
	After  []string `json:"after"`
}

// SpellChecker produces candidate corrections for a free-text value.
type SpellChecker interface {
	Suggest(text string) []string
}

type SpellcheckUsecase interface {
	Check(ctx context.Context, req *SpellcheckRequest) ([]SpellcheckResult, error)
}
