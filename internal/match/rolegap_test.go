package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func namedSkills(names ...string) []types.Skill {
	skills := make([]types.Skill, 0, len(names))
	for _, name := range names {
		skills = append(skills, types.Skill{Name: name, Level: 60})
	}
	return skills
}

func TestAnalyze_FiveOfEightRoundsTo63(t *testing.T) {
	analyzer := NewAnalyzer([]Role{{
		Category: "Backend Developer",
		Required: []string{"python", "java", "node.js", "sql", "api", "docker", "git", "aws"},
	}})

	matches, gaps := analyzer.Analyze(namedSkills("Python", "Java", "Node.js", "SQL", "Docker"))

	require.Len(t, matches, 1)
	assert.Equal(t, 63, matches[0].MatchScore)
	assert.ElementsMatch(t, []string{"python", "java", "node.js", "sql", "docker"}, matches[0].MatchedSkills)
	assert.ElementsMatch(t, []string{"api", "git", "aws"}, matches[0].MissingSkills)

	require.Len(t, gaps, 1)
	assert.Equal(t, "Focus on improving: api, git, aws", gaps[0].Recommendation)
	assert.Equal(t, "medium", gaps[0].Priority)
}

func TestAnalyze_TopThreeDescending(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	matches, _ := analyzer.Analyze(namedSkills("JavaScript", "TypeScript", "React", "HTML", "CSS", "Angular"))

	require.Len(t, matches, 3)
	assert.Equal(t, "Frontend Developer", matches[0].Category)
	assert.Equal(t, 100, matches[0].MatchScore)
	assert.GreaterOrEqual(t, matches[0].MatchScore, matches[1].MatchScore)
	assert.GreaterOrEqual(t, matches[1].MatchScore, matches[2].MatchScore)
}

func TestAnalyze_PerfectRoleGetsStrongAlignment(t *testing.T) {
	analyzer := NewAnalyzer([]Role{{
		Category: "Frontend Developer",
		Required: []string{"javascript", "react"},
	}})

	_, gaps := analyzer.Analyze(namedSkills("JavaScript", "React"))

	require.Len(t, gaps, 1)
	assert.Equal(t, "Strong alignment with this role", gaps[0].Recommendation)
	assert.Empty(t, gaps[0].Missing)
}

func TestAnalyze_RecommendationNamesAtMostThree(t *testing.T) {
	analyzer := NewAnalyzer([]Role{{
		Category: "DevOps Engineer",
		Required: []string{"docker", "kubernetes", "aws", "terraform", "linux"},
	}})

	_, gaps := analyzer.Analyze(namedSkills("Linux"))

	require.Len(t, gaps, 1)
	assert.Equal(t, "Focus on improving: docker, kubernetes, aws", gaps[0].Recommendation)
	assert.Equal(t, "high", gaps[0].Priority)
	assert.Len(t, gaps[0].Missing, 4)
}

func TestAnalyze_NoSkillsStillReturnsRoles(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	matches, gaps := analyzer.Analyze(nil)

	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.Zero(t, m.MatchScore)
	}
	assert.Len(t, gaps, 3)
}

func TestAnalyze_NormalizedComparison(t *testing.T) {
	analyzer := NewAnalyzer([]Role{{
		Category: "Backend Developer",
		Required: []string{"node.js"},
	}})

	matches, _ := analyzer.Analyze(namedSkills("NodeJS"))

	require.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].MatchScore)
}
