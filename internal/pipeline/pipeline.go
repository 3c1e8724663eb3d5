// Package pipeline orchestrates one analysis request end to end:
// extraction through the provider fallback chain, enrichment, scoring,
// job matching and role-gap analysis, merged into one output document.
package pipeline

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/match"
	"github.com/jonathan/resume-analyzer/internal/profile"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ErrNoInput is the only hard failure the pipeline surfaces: the caller
// supplied neither document bytes nor pasted text.
var ErrNoInput = errors.New("no document bytes or text supplied")

// maxJobMatches bounds how many postings the output document carries.
const maxJobMatches = 10

// Input is one analysis request. Exactly one of Data or Text must be
// supplied.
type Input struct {
	Data     []byte
	MIMEType string
	Filename string
	Text     string

	UserID   string
	Location string
}

// Enricher augments deterministic scoring via an external reasoning
// service.
type Enricher interface {
	Enrich(ctx context.Context, profile *types.CandidateProfile) (*types.Enrichment, error)
}

// JobSearcher fetches live postings for a skill set.
type JobSearcher interface {
	Search(ctx context.Context, skills []string, location string) ([]types.JobPosting, error)
}

// Saver persists a completed analysis and returns an opaque record id.
// Failure is soft.
type Saver interface {
	SaveAnalysis(ctx context.Context, userID string, result *types.AnalysisResult) (uuid.UUID, error)
}

// Runner wires the pipeline stages together. Enricher, JobSearcher and
// Saver are optional; a nil collaborator degrades quality, not
// structure.
type Runner struct {
	chain    *profile.Chain
	matcher  *match.Matcher
	analyzer *match.Analyzer

	enricher Enricher
	jobs     JobSearcher
	saver    Saver
}

// NewRunner creates a pipeline runner. A nil chain, matcher or analyzer
// gets a default.
func NewRunner(chain *profile.Chain, matcher *match.Matcher, analyzer *match.Analyzer, enricher Enricher, jobs JobSearcher, saver Saver) *Runner {
	if chain == nil {
		chain = profile.NewChain(nil)
	}
	if matcher == nil {
		matcher = match.NewMatcher(match.DefaultMatcherConfig())
	}
	if analyzer == nil {
		analyzer = match.NewAnalyzer(nil)
	}
	return &Runner{
		chain:    chain,
		matcher:  matcher,
		analyzer: analyzer,
		enricher: enricher,
		jobs:     jobs,
		saver:    saver,
	}
}

// Run executes one analysis. Apart from ErrNoInput every failure mode
// degrades the result instead of aborting it.
func (r *Runner) Run(ctx context.Context, in Input) (*types.AnalysisResult, error) {
	if len(in.Data) == 0 && strings.TrimSpace(in.Text) == "" {
		return nil, ErrNoInput
	}

	doc := types.Document{
		Data:     in.Data,
		MIMEType: in.MIMEType,
		Filename: in.Filename,
		Text:     in.Text,
	}
	candidate := r.chain.Parse(ctx, doc)

	// Enrichment and job search are independent of each other; run them
	// concurrently once the profile exists. Neither may fail the request.
	var enrichment *types.Enrichment
	var postings []types.JobPosting
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if r.enricher == nil {
			return nil
		}
		enriched, err := r.enricher.Enrich(groupCtx, candidate)
		if err != nil {
			log.Printf("[pipeline] enrichment unavailable, using deterministic scoring: %v", err)
			return nil
		}
		enrichment = enriched
		return nil
	})
	group.Go(func() error {
		if r.jobs == nil {
			return nil
		}
		location := in.Location
		if location == "" {
			location = candidate.PersonalInfo.Location
		}
		found, err := r.jobs.Search(groupCtx, candidate.SkillNames(), location)
		if err != nil {
			log.Printf("[pipeline] job search unavailable: %v", err)
			return nil
		}
		postings = found
		return nil
	})
	_ = group.Wait()

	roleMatches, skillGaps := r.analyzer.Analyze(candidate.Skills)

	result := types.NewAnalysisResult()
	result.PersonalInfo = candidate.PersonalInfo
	result.Summary = candidate.Summary
	result.Skills = candidate.Skills
	result.Experience = candidate.Experience
	result.Education = candidate.Education
	result.Certifications = candidate.Certifications
	result.Projects = candidate.Projects
	result.RoleMatches = roleMatches
	result.SkillGaps = skillGaps
	result.Keywords = keywordsFrom(candidate)
	result.ExtractionMethod = candidate.ExtractionMethod

	for _, posting := range postings {
		if len(result.JobMatches) == maxJobMatches {
			break
		}
		matched := r.matcher.Match(candidate.Skills, posting)
		result.JobMatches = append(result.JobMatches, types.JobMatch{
			Title:         posting.Title,
			Company:       posting.Company,
			Location:      posting.Location,
			Salary:        posting.Salary,
			URL:           posting.URL,
			MatchScore:    matched.MatchScore,
			MatchedSkills: matched.MatchedSkills,
			MissingSkills: matched.MissingSkills,
		})
	}
	sort.SliceStable(result.JobMatches, func(i, j int) bool {
		return result.JobMatches[i].MatchScore > result.JobMatches[j].MatchScore
	})

	// An accepted enrichment supersedes the deterministic scorer whole;
	// the two are never spliced together.
	if enrichment != nil {
		result.ATSScore = enrichment.ATSScore
		result.ImprovementSuggestions = enrichment.ImprovementSuggestions
		applyAssessments(result, enrichment.SkillAssessment)
	} else {
		result.ATSScore = scoring.Score(candidate, roleMatches)
		result.ImprovementSuggestions = suggestionsFrom(skillGaps)
	}

	if r.saver != nil && in.UserID != "" {
		if _, err := r.saver.SaveAnalysis(ctx, in.UserID, result); err != nil {
			log.Printf("[pipeline] persisting analysis failed: %v", err)
			result.DBSaveError = true
		}
	}
	return result, nil
}

// applyAssessments folds the enrichment's per-skill levels back onto
// the profile's skills, marking them verified.
func applyAssessments(result *types.AnalysisResult, assessments []types.SkillAssessment) {
	byName := make(map[string]types.SkillAssessment, len(assessments))
	for _, a := range assessments {
		byName[strings.ToLower(a.Name)] = a
	}
	for i := range result.Skills {
		if a, ok := byName[strings.ToLower(result.Skills[i].Name)]; ok {
			result.Skills[i].Level = a.Level
			result.Skills[i].Verified = true
		}
	}
}

// keywordsFrom derives the output keyword list from detected skills.
func keywordsFrom(candidate *types.CandidateProfile) []string {
	seen := make(map[string]bool, len(candidate.Skills))
	keywords := make([]string, 0, len(candidate.Skills))
	for _, skill := range candidate.Skills {
		k := strings.ToLower(skill.Name)
		if !seen[k] {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// suggestionsFrom turns role gaps into deterministic improvement
// suggestions.
func suggestionsFrom(gaps []types.SkillGap) []string {
	suggestions := []string{}
	seen := make(map[string]bool, len(gaps))
	for _, gap := range gaps {
		if len(gap.Missing) == 0 || seen[gap.Recommendation] {
			continue
		}
		seen[gap.Recommendation] = true
		suggestions = append(suggestions, gap.Recommendation+" to strengthen your fit for "+gap.Category+" roles")
	}
	return suggestions
}
