// Package profile builds candidate profiles from extracted resume text
// and runs the provider fallback chain that guarantees one is always
// produced.
package profile

import (
	"context"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/detect"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Extraction method tags stamped on profiles by the local builder.
const (
	MethodEnhancedLocal = "enhanced-local"
	MethodBasicFallback = "basic-fallback"
)

// defaultName is used when no candidate name could be extracted.
const defaultName = "Candidate"

// LocalBuilder is the terminal, always-succeeding provider: it parses
// the document with the local heuristics and never returns an error.
type LocalBuilder struct {
	detector *skills.Detector
}

// NewLocalBuilder creates a local builder over the given skill detector.
func NewLocalBuilder(detector *skills.Detector) *LocalBuilder {
	if detector == nil {
		detector = skills.NewDetector(nil)
	}
	return &LocalBuilder{detector: detector}
}

// Parse implements Provider. It cannot fail: extraction errors degrade
// to placeholder text and the profile is built from whatever remains.
func (b *LocalBuilder) Parse(_ context.Context, doc types.Document) (*types.CandidateProfile, error) {
	text := doc.Text
	method := MethodEnhancedLocal

	if !doc.IsText() {
		kind := detect.Detect(doc.Data, doc.MIMEType, doc.Filename)
		extracted, err := extract.Run(kind, doc.Data)
		text = extracted.Text
		if err != nil {
			method = MethodBasicFallback
		}
	}

	return b.Build(text, method), nil
}

// Build merges the personal-info, skill, and section parsers into one
// CandidateProfile. It succeeds even on empty input, substituting
// conservative defaults.
func (b *LocalBuilder) Build(text, method string) *types.CandidateProfile {
	p := types.NewCandidateProfile()
	p.ExtractionMethod = method

	p.PersonalInfo = parsing.ExtractPersonalInfo(text)
	if strings.TrimSpace(p.PersonalInfo.Name) == "" {
		p.PersonalInfo.Name = defaultName
	}

	for _, skill := range b.detector.Detect(text) {
		p.UpsertSkill(skill)
	}

	sections := parsing.SegmentSections(text)
	p.Summary = sections.Summary
	if len(sections.Experience) > 0 {
		p.Experience = sections.Experience
	}
	if len(sections.Education) > 0 {
		p.Education = sections.Education
	}
	if len(sections.Certifications) > 0 {
		p.Certifications = sections.Certifications
	}
	if len(sections.Projects) > 0 {
		p.Projects = sections.Projects
	}

	return p
}
