package match

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// topRoles is how many roles the analyzer reports.
const topRoles = 3

// recommendationLimit caps how many missing skills a recommendation
// names.
const recommendationLimit = 3

// Role pairs a role title with the skills it requires.
type Role struct {
	Category string
	Required []string
}

// DefaultRoles returns the static role taxonomy.
func DefaultRoles() []Role {
	return []Role{
		{Category: "Frontend Developer", Required: []string{
			"javascript", "typescript", "react", "html", "css", "angular",
		}},
		{Category: "Backend Developer", Required: []string{
			"python", "java", "node.js", "sql", "api", "docker", "git", "aws",
		}},
		{Category: "Full Stack Developer", Required: []string{
			"javascript", "python", "react", "node.js", "sql", "git",
		}},
		{Category: "Data Scientist", Required: []string{
			"python", "sql", "machine learning", "pandas", "numpy", "statistics",
		}},
		{Category: "DevOps Engineer", Required: []string{
			"docker", "kubernetes", "aws", "terraform", "linux", "git", "ci/cd",
		}},
		{Category: "Mobile Developer", Required: []string{
			"swift", "kotlin", "react native", "flutter", "ios", "android",
		}},
	}
}

// Analyzer compares a candidate against the role taxonomy.
type Analyzer struct {
	roles []Role
}

// NewAnalyzer creates an analyzer. A nil table gets the default
// taxonomy.
func NewAnalyzer(roles []Role) *Analyzer {
	if roles == nil {
		roles = DefaultRoles()
	}
	return &Analyzer{roles: roles}
}

// Analyze scores every role and returns the strongest matches plus the
// skill gaps blocking each of them.
func (a *Analyzer) Analyze(skills []types.Skill) ([]types.RoleMatch, []types.SkillGap) {
	have := make(map[string]bool, len(skills))
	for _, skill := range skills {
		have[normalizeSkillName(skill.Name)] = true
	}

	matches := make([]types.RoleMatch, 0, len(a.roles))
	for _, role := range a.roles {
		if len(role.Required) == 0 {
			continue
		}
		m := types.RoleMatch{
			Category:      role.Category,
			MatchedSkills: []string{},
			MissingSkills: []string{},
		}
		for _, required := range role.Required {
			if have[normalizeSkillName(required)] {
				m.MatchedSkills = append(m.MatchedSkills, required)
			} else {
				m.MissingSkills = append(m.MissingSkills, required)
			}
		}
		m.MatchScore = int(math.Round(100 * float64(len(m.MatchedSkills)) / float64(len(role.Required))))
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].MatchScore > matches[j].MatchScore })
	if len(matches) > topRoles {
		matches = matches[:topRoles]
	}

	gaps := make([]types.SkillGap, 0, len(matches))
	for _, m := range matches {
		gaps = append(gaps, types.SkillGap{
			Category:       m.Category,
			Missing:        m.MissingSkills,
			Recommendation: recommendation(m.MissingSkills),
			Priority:       priority(len(m.MissingSkills)),
		})
	}
	return matches, gaps
}

// recommendation phrases the gap for the candidate.
func recommendation(missing []string) string {
	if len(missing) == 0 {
		return "Strong alignment with this role"
	}
	named := missing
	if len(named) > recommendationLimit {
		named = named[:recommendationLimit]
	}
	return "Focus on improving: " + strings.Join(named, ", ")
}

func priority(missingCount int) string {
	switch {
	case missingCount >= 4:
		return "high"
	case missingCount >= 2:
		return "medium"
	default:
		return "low"
	}
}
