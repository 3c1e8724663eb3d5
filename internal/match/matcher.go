// Package match scores skill overlap between a candidate and job
// postings, and compares the candidate against a static role taxonomy.
package match

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// MatcherConfig exposes the hand-tuned matching weights. The defaults
// reproduce long-standing production behavior; callers that want to
// re-tune them swap the whole config rather than patching literals.
type MatcherConfig struct {
	// MaxScore caps the reported match score. The matcher never claims
	// absolute certainty.
	MaxScore int
	// PerSkillCap bounds one skill's contribution.
	PerSkillCap float64
	// BaseWeight is added to the level weight before the category
	// multiplier applies.
	BaseWeight float64
	// LevelWeights maps proficiency band names to weights.
	LevelWeights map[string]float64
	// CategoryMultipliers maps skill categories to multipliers. Lookup
	// is case-insensitive and tolerates a trailing plural "s".
	CategoryMultipliers map[string]float64
	// DefaultMultiplier applies to categories absent from the table.
	DefaultMultiplier float64
	// CommonlyRequired terms are flagged as missing when a job mentions
	// them and the candidate does not.
	CommonlyRequired []string
}

// DefaultMatcherConfig returns the production weight set.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		MaxScore:    95,
		PerSkillCap: 10,
		BaseWeight:  6,
		LevelWeights: map[string]float64{
			"Expert":       4,
			"Advanced":     3,
			"Intermediate": 2,
			"Beginner":     1,
		},
		CategoryMultipliers: map[string]float64{
			"Programming": 1.3,
			"Framework":   1.2,
			"Technical":   1.1,
			"Database":    1.1,
		},
		DefaultMultiplier: 1.0,
		CommonlyRequired: []string{
			"javascript", "python", "java", "react", "node.js", "sql", "git", "aws",
		},
	}
}

// Matcher scores candidate skills against job postings.
type Matcher struct {
	cfg MatcherConfig

	// multipliers is CategoryMultipliers re-keyed by normalized name.
	multipliers map[string]float64
}

// NewMatcher creates a matcher with the given config.
func NewMatcher(cfg MatcherConfig) *Matcher {
	multipliers := make(map[string]float64, len(cfg.CategoryMultipliers))
	for category, multiplier := range cfg.CategoryMultipliers {
		multipliers[normalizeCategory(category)] = multiplier
	}
	return &Matcher{cfg: cfg, multipliers: multipliers}
}

// scoredSkill pairs a matched skill with its contribution.
type scoredSkill struct {
	name  string
	score float64
}

// Match scores the candidate's skills against one job posting. Empty
// skills or empty job text yield a zero score, never an error.
func (m *Matcher) Match(skills []types.Skill, job types.JobPosting) types.MatchResult {
	result := types.MatchResult{
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}

	haystack := buildHaystack(job)
	if len(skills) == 0 || haystack == "" {
		return result
	}

	candidateSet := make(map[string]bool, len(skills))
	var matched []scoredSkill
	var sum float64
	for _, skill := range skills {
		normalized := normalizeSkillName(skill.Name)
		if normalized == "" {
			continue
		}
		candidateSet[normalized] = true
		if !skillAppears(haystack, normalized) {
			continue
		}
		score := m.skillScore(skill)
		matched = append(matched, scoredSkill{name: skill.Name, score: score})
		sum += score
	}

	// Strongest contributions first.
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].score > matched[j].score })
	for _, s := range matched {
		result.MatchedSkills = append(result.MatchedSkills, s.name)
	}

	total := int(math.Round(100 * sum / (m.cfg.PerSkillCap * float64(len(skills)))))
	if total > m.cfg.MaxScore {
		total = m.cfg.MaxScore
	}
	result.MatchScore = total

	for _, term := range m.cfg.CommonlyRequired {
		if strings.Contains(haystack, term) && !candidateSet[normalizeSkillName(term)] {
			result.MissingSkills = append(result.MissingSkills, term)
		}
	}
	return result
}

// skillScore computes one matched skill's contribution.
func (m *Matcher) skillScore(skill types.Skill) float64 {
	weight, ok := m.cfg.LevelWeights[skill.LevelName()]
	if !ok {
		weight = 1
	}
	multiplier, ok := m.multipliers[normalizeCategory(skill.Category)]
	if !ok {
		multiplier = m.cfg.DefaultMultiplier
	}
	return math.Min(m.cfg.PerSkillCap, (m.cfg.BaseWeight+weight)*multiplier)
}

// buildHaystack lowercases the searchable job text.
func buildHaystack(job types.JobPosting) string {
	parts := []string{job.Title, job.Description}
	parts = append(parts, job.Requirements...)
	return strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
}

// skillAppears reports whether the normalized skill name, or any of its
// tokens longer than two characters, occurs in the haystack.
func skillAppears(haystack, normalized string) bool {
	if strings.Contains(haystack, normalized) {
		return true
	}
	for _, token := range strings.Fields(normalized) {
		if len(token) > 2 && strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}

// normalizeSkillName lowercases and strips punctuation, keeping spaces
// so multi-word skills stay tokenizable.
func normalizeSkillName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// normalizeCategory folds case and a trailing plural so lexicon
// categories like "Databases" hit the "Database" multiplier.
func normalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	return strings.TrimSuffix(c, "s")
}
