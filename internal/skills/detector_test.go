package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_LevelsFromContext(t *testing.T) {
	// Padding keeps each skill's context window from bleeding into the
	// next skill's proficiency keyword.
	text := "Python (expert)" + strings.Repeat(".", 60) +
		"React (advanced)" + strings.Repeat(".", 60) +
		"AWS (beginner)"
	detected := NewDetector(nil).Detect(text)

	levels := make(map[string]int)
	for _, s := range detected {
		levels[s.Name] = s.Level
	}

	assert.Equal(t, 90, levels["Python"])
	assert.Equal(t, 90, levels["React"])
	assert.Equal(t, 40, levels["AWS"])
}

func TestDetect_DefaultLevel(t *testing.T) {
	detected := NewDetector(nil).Detect("Worked with Kubernetes in production")
	require.NotEmpty(t, detected)
	for _, s := range detected {
		if s.Name == "Kubernetes" {
			assert.Equal(t, 60, s.Level)
			assert.Equal(t, "Cloud & DevOps", s.Category)
			return
		}
	}
	t.Fatalf("Kubernetes not detected")
}

func TestDetect_IntermediateKeywords(t *testing.T) {
	detected := NewDetector(nil).Detect("proficient in PostgreSQL administration")
	for _, s := range detected {
		if s.Name == "PostgreSQL" {
			assert.Equal(t, 70, s.Level)
			return
		}
	}
	t.Fatalf("PostgreSQL not detected")
}

func TestDetect_NoDuplicateNames(t *testing.T) {
	text := "Python python PYTHON and more Python"
	detected := NewDetector(nil).Detect(text)

	seen := make(map[string]bool)
	for _, s := range detected {
		key := strings.ToLower(s.Name)
		assert.False(t, seen[key], "duplicate skill %q", s.Name)
		seen[key] = true
	}
}

func TestDetect_CaseInsensitiveMatch(t *testing.T) {
	detected := NewDetector(nil).Detect("experience with DOCKER and terraform")
	names := make(map[string]bool)
	for _, s := range detected {
		names[s.Name] = true
	}
	assert.True(t, names["Docker"])
	assert.True(t, names["Terraform"])
}

func TestDetect_ContextWindowIsLocal(t *testing.T) {
	// The expert keyword sits far away from the skill; padding keeps it
	// outside the 50-character window.
	text := "Java. " + strings.Repeat("x", 80) + " expert in nothing"
	detected := NewDetector(nil).Detect(text)
	for _, s := range detected {
		if s.Name == "Java" {
			assert.Equal(t, 60, s.Level)
			return
		}
	}
	t.Fatalf("Java not detected")
}

func TestDetect_EmptyText(t *testing.T) {
	detected := NewDetector(nil).Detect("")
	assert.Empty(t, detected)
}

func TestDetect_ExperienceYearsZero(t *testing.T) {
	detected := NewDetector(nil).Detect("Go and Redis")
	require.NotEmpty(t, detected)
	for _, s := range detected {
		assert.Zero(t, s.ExperienceYears)
		assert.False(t, s.Verified)
	}
}

func TestCategoryOf_UnknownTerm(t *testing.T) {
	assert.Equal(t, "Other", DefaultLexicon().CategoryOf("Underwater Basket Weaving"))
}

func TestDefaultLexicon_CategoryCount(t *testing.T) {
	assert.Len(t, DefaultLexicon().Categories, 8)
}
