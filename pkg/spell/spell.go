// Package spell wraps a dictionary-trained fuzzy model and turns per-word
// suggestions into candidate corrections for whole text fields.
package spell

import (
	_ "embed"
	"strings"
	"unicode"

	"github.com/sajari/fuzzy"
)

//go:embed words.txt
var wordList string

// maxCandidates caps the corrections returned for one text field.
const maxCandidates = 5

type Checker struct {
	model *fuzzy.Model
}

func NewChecker() *Checker {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(strings.Fields(wordList))
	return &Checker{model: model}
}

// Suggest returns candidate corrections for text. Each candidate is the full
// text with one suspect word swapped for a dictionary suggestion, in word
// order. An empty slice means the checker has nothing to offer.
func (c *Checker) Suggest(text string) []string {
	words := strings.Fields(text)
	candidates := []string{}
	for i, word := range words {
		core := strings.TrimFunc(word, isNotAlnum)
		if core == "" {
			continue
		}
		lower := strings.ToLower(core)
		for _, suggestion := range c.model.Suggestions(lower, false) {
			if suggestion == lower {
				continue
			}
			candidates = append(candidates, replaceWord(words, i, core, suggestion))
			if len(candidates) == maxCandidates {
				return candidates
			}
		}
	}
	return candidates
}

// replaceWord rebuilds the text with words[i]'s core swapped for the
// suggestion, keeping surrounding punctuation and leading capitalization.
func replaceWord(words []string, i int, core, suggestion string) string {
	word := words[i]
	start := strings.Index(word, core)
	prefix, suffix := word[:start], word[start+len(core):]

	out := make([]string, len(words))
	copy(out, words)
	out[i] = prefix + matchCase(core, suggestion) + suffix
	return strings.Join(out, " ")
}

func matchCase(original, suggestion string) string {
	r := []rune(original)
	if len(r) == 0 || !unicode.IsUpper(r[0]) {
		return suggestion
	}
	s := []rune(suggestion)
	if len(s) > 0 {
		s[0] = unicode.ToUpper(s[0])
	}
	return string(s)
}

func isNotAlnum(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
