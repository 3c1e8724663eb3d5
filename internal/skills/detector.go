package skills

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Proficiency level assigned per context keyword group.
const (
	levelExpertContext       = 90
	levelIntermediateContext = 70
	levelBeginnerContext     = 40
	levelDefault             = 60

	// contextWindow is the number of characters inspected on each side
	// of a skill's first occurrence.
	contextWindow = 50
)

var (
	expertKeywords       = []string{"expert", "advanced", "senior", "lead", "architect"}
	intermediateKeywords = []string{"intermediate", "proficient", "experienced"}
	beginnerKeywords     = []string{"beginner", "basic", "learning", "familiar"}
)

// Detector scans text for lexicon terms and levels each hit from its
// surrounding context. Safe for concurrent use.
type Detector struct {
	lexicon *Lexicon
}

// NewDetector creates a detector over the given lexicon. A nil lexicon
// falls back to the default vocabulary.
func NewDetector(lexicon *Lexicon) *Detector {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Detector{lexicon: lexicon}
}

// Detect returns the skills found in text, deduplicated by
// case-insensitive name. ExperienceYears stays 0 unless enriched later.
func (d *Detector) Detect(text string) []types.Skill {
	lower := strings.ToLower(text)
	detected := []types.Skill{}
	seen := make(map[string]bool)

	for _, category := range d.lexicon.Categories {
		for _, term := range category.Terms {
			key := strings.ToLower(term)
			if seen[key] {
				continue
			}
			idx := strings.Index(lower, key)
			if idx < 0 {
				continue
			}
			seen[key] = true
			detected = append(detected, types.Skill{
				Name:     term,
				Level:    levelFromContext(lower, idx, len(key)),
				Category: category.Name,
			})
		}
	}

	return detected
}

// levelFromContext classifies proficiency from the characters around a
// term's first occurrence.
func levelFromContext(lower string, idx, termLen int) int {
	start := idx - contextWindow
	if start < 0 {
		start = 0
	}
	end := idx + termLen + contextWindow
	if end > len(lower) {
		end = len(lower)
	}
	window := lower[start:end]

	switch {
	case containsAny(window, expertKeywords):
		return levelExpertContext
	case containsAny(window, intermediateKeywords):
		return levelIntermediateContext
	case containsAny(window, beginnerKeywords):
		return levelBeginnerContext
	default:
		return levelDefault
	}
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
