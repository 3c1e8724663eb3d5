// Package scoring computes the deterministic ATS score. The rules are
// fixed thresholds so the same profile always scores the same; an AI
// enrichment, when accepted, supersedes this output entirely.
package scoring

import "github.com/jonathan/resume-analyzer/internal/types"

// Threshold rules for the breakdown components.
const (
	skillsRichCount = 5
	skillsRich      = 80
	skillsSparse    = 60

	experiencePresent = 75
	experienceAbsent  = 50

	educationPresent = 80
	educationAbsent  = 60

	resumeQualityFixed = 75
	marketFitFixed     = 70
	formattingFixed    = 75

	keywordsRichCount = 3
	keywordsRich      = 75
	keywordsSparse    = 55

	// overallDefault is used when no role comparison is available to
	// estimate overall fit from.
	overallDefault = 75
)

// Score derives the deterministic ATS score for a profile. Role matches,
// when available, anchor the overall estimate; otherwise a neutral
// default applies.
func Score(profile *types.CandidateProfile, roleMatches []types.RoleMatch) types.ATSScore {
	breakdown := types.ScoreBreakdown{
		Skills:        pick(len(profile.Skills) > skillsRichCount, skillsRich, skillsSparse),
		Experience:    pick(len(profile.Experience) > 0, experiencePresent, experienceAbsent),
		Education:     pick(len(profile.Education) > 0, educationPresent, educationAbsent),
		ResumeQuality: resumeQualityFixed,
		MarketFit:     marketFitFixed,
		Formatting:    formattingFixed,
		Keywords:      pick(len(profile.Skills) > keywordsRichCount, keywordsRich, keywordsSparse),
	}

	return types.ATSScore{
		Overall:   estimateOverall(roleMatches),
		Breakdown: breakdown,
	}
}

// estimateOverall anchors the overall score on the strongest role match.
func estimateOverall(roleMatches []types.RoleMatch) int {
	best := -1
	for _, m := range roleMatches {
		if m.MatchScore > best {
			best = m.MatchScore
		}
	}
	if best < 0 {
		return overallDefault
	}
	return best
}

func pick(cond bool, yes, no int) int {
	if cond {
		return yes
	}
	return no
}
