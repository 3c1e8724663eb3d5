package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// enrichTimeout bounds one model call.
	enrichTimeout = 10 * time.Second
	// maxAttempts is the total number of model calls before giving up.
	maxAttempts = 2
)

// enrichmentSchema is the contract the model response must satisfy.
// Responses missing any of the three top-level keys are rejected whole.
const enrichmentSchema = `{
	"type": "object",
	"required": ["atsScore", "skillAssessment", "improvementSuggestions"],
	"properties": {
		"atsScore": {
			"type": "object",
			"required": ["overall"],
			"properties": {
				"overall": {"type": "number", "minimum": 0, "maximum": 100},
				"breakdown": {"type": "object"}
			}
		},
		"skillAssessment": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "level"],
				"properties": {
					"name": {"type": "string"},
					"level": {"type": "number", "minimum": 0, "maximum": 100},
					"comment": {"type": "string"}
				}
			}
		},
		"improvementSuggestions": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

// SchemaMismatchError reports a model response that could not be
// reconciled with the enrichment contract.
type SchemaMismatchError struct {
	Message string
	Cause   error
}

func (e *SchemaMismatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enrichment schema mismatch: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("enrichment schema mismatch: %s", e.Message)
}

func (e *SchemaMismatchError) Unwrap() error {
	return e.Cause
}

// Adapter drives the reasoning model and validates its output against
// the enrichment contract. A nil or failed adapter leaves the caller on
// the deterministic path; it never degrades the result structure.
type Adapter struct {
	client Client
	schema *gojsonschema.Schema
}

// NewAdapter creates an enrichment adapter around a model client.
func NewAdapter(client Client) (*Adapter, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(enrichmentSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile enrichment schema: %w", err)
	}
	return &Adapter{client: client, schema: schema}, nil
}

// Enrich asks the model to assess the profile. One retry on any
// failure; after that the caller falls back to deterministic output.
func (a *Adapter) Enrich(ctx context.Context, profile *types.CandidateProfile) (*types.Enrichment, error) {
	prompt, err := buildPrompt(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to build enrichment prompt: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, enrichTimeout)
		raw, err := a.client.GenerateJSON(callCtx, prompt)
		cancel()
		if err != nil {
			lastErr = err
			log.Printf("[enrich] attempt %d/%d failed: %v", attempt, maxAttempts, err)
			continue
		}

		enrichment, err := a.decode(raw)
		if err != nil {
			lastErr = err
			log.Printf("[enrich] attempt %d/%d rejected: %v", attempt, maxAttempts, err)
			continue
		}
		return enrichment, nil
	}
	return nil, lastErr
}

// decode rescues the JSON object from the raw model text and validates
// it against the contract before unmarshaling.
func (a *Adapter) decode(raw string) (*types.Enrichment, error) {
	candidate, err := rescueJSON(raw)
	if err != nil {
		return nil, err
	}

	result, err := a.schema.Validate(gojsonschema.NewStringLoader(candidate))
	if err != nil {
		return nil, &SchemaMismatchError{Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, &SchemaMismatchError{Message: strings.Join(problems, "; ")}
	}

	// The schema accepts fractional scores; round them onto the 0-100
	// integer scale before handing the enrichment to the caller.
	var loose struct {
		ATSScore struct {
			Overall   float64 `json:"overall"`
			Breakdown struct {
				Skills        float64 `json:"skills"`
				Experience    float64 `json:"experience"`
				Education     float64 `json:"education"`
				ResumeQuality float64 `json:"resumeQuality"`
				MarketFit     float64 `json:"marketFit"`
				Formatting    float64 `json:"formatting"`
				Keywords      float64 `json:"keywords"`
			} `json:"breakdown"`
		} `json:"atsScore"`
		SkillAssessment []struct {
			Name    string  `json:"name"`
			Level   float64 `json:"level"`
			Comment string  `json:"comment"`
		} `json:"skillAssessment"`
		ImprovementSuggestions []string `json:"improvementSuggestions"`
	}
	if err := json.Unmarshal([]byte(candidate), &loose); err != nil {
		return nil, &SchemaMismatchError{Message: "decoding validated response", Cause: err}
	}

	enrichment := &types.Enrichment{
		ATSScore: types.ATSScore{
			Overall: roundScore(loose.ATSScore.Overall),
			Breakdown: types.ScoreBreakdown{
				Skills:        roundScore(loose.ATSScore.Breakdown.Skills),
				Experience:    roundScore(loose.ATSScore.Breakdown.Experience),
				Education:     roundScore(loose.ATSScore.Breakdown.Education),
				ResumeQuality: roundScore(loose.ATSScore.Breakdown.ResumeQuality),
				MarketFit:     roundScore(loose.ATSScore.Breakdown.MarketFit),
				Formatting:    roundScore(loose.ATSScore.Breakdown.Formatting),
				Keywords:      roundScore(loose.ATSScore.Breakdown.Keywords),
			},
		},
		SkillAssessment:        []types.SkillAssessment{},
		ImprovementSuggestions: loose.ImprovementSuggestions,
	}
	for _, s := range loose.SkillAssessment {
		enrichment.SkillAssessment = append(enrichment.SkillAssessment, types.SkillAssessment{
			Name:    s.Name,
			Level:   roundScore(s.Level),
			Comment: s.Comment,
		})
	}
	if enrichment.ImprovementSuggestions == nil {
		enrichment.ImprovementSuggestions = []string{}
	}
	return enrichment, nil
}

// rescueJSON extracts the substring between the first "{" and the last
// "}". Models wrap JSON in prose often enough that this salvage pass
// pays for itself.
func rescueJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", &SchemaMismatchError{Message: "no JSON object in response"}
	}
	return raw[start : end+1], nil
}

func roundScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v + 0.5)
}

// buildPrompt renders the profile and the output contract into the
// model prompt.
func buildPrompt(profile *types.CandidateProfile) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You are an applicant tracking system evaluating a candidate profile.\n\n")
	sb.WriteString("Candidate profile:\n")
	sb.Write(profileJSON)
	sb.WriteString("\n\nAssess the candidate and respond with ONLY a JSON object, no markdown, no prose, matching exactly this shape:\n")
	sb.WriteString(`{
  "atsScore": {
    "overall": <0-100>,
    "breakdown": {
      "skills": <0-100>,
      "experience": <0-100>,
      "education": <0-100>,
      "resumeQuality": <0-100>,
      "marketFit": <0-100>,
      "formatting": <0-100>,
      "keywords": <0-100>
    }
  },
  "skillAssessment": [{"name": "<skill>", "level": <0-100>, "comment": "<short note>"}],
  "improvementSuggestions": ["<concrete suggestion>"]
}`)
	sb.WriteString("\n\nAll three top-level keys are mandatory.")
	return sb.String(), nil
}
