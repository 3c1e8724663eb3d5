package profile

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// premiumTimeout bounds one premium provider call.
const premiumTimeout = 10 * time.Second

// PremiumProvider calls an external resume-parsing service over HTTP and
// maps its payload into the canonical CandidateProfile shape. Callers
// never see the provider-specific payload.
type PremiumProvider struct {
	name     string
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewPremiumProvider creates a provider client. An empty endpoint or
// API key leaves the provider unconfigured and the chain skips it.
func NewPremiumProvider(name, endpoint, apiKey string) *PremiumProvider {
	return &PremiumProvider{
		name:     name,
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: premiumTimeout},
	}
}

// Name implements Provider.
func (p *PremiumProvider) Name() string { return p.name }

// Configured implements Provider.
func (p *PremiumProvider) Configured() bool {
	return p.endpoint != "" && p.apiKey != ""
}

// premiumRequest is the wire format sent to the parsing service.
type premiumRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"` // base64 document bytes, or raw text
	IsText   bool   `json:"is_text,omitempty"`
}

// premiumPayload is the provider-specific response shape.
type premiumPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Summary string `json:"summary"`
	Skills  []struct {
		Name  string `json:"name"`
		Level string `json:"level"`
	} `json:"skills"`
	WorkHistory []struct {
		Title       string `json:"title"`
		Employer    string `json:"employer"`
		Dates       string `json:"dates"`
		Description string `json:"description"`
	} `json:"work_history"`
	Education []struct {
		School string `json:"school"`
		Degree string `json:"degree"`
		Year   string `json:"year"`
	} `json:"education"`
}

// Parse implements Provider.
func (p *PremiumProvider) Parse(ctx context.Context, doc types.Document) (*types.CandidateProfile, error) {
	reqBody := premiumRequest{Filename: doc.Filename}
	if doc.IsText() {
		reqBody.Content = doc.Text
		reqBody.IsText = true
	} else {
		reqBody.Content = base64.StdEncoding.EncodeToString(doc.Data)
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Message: "encoding request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Message: "creating request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{Provider: p.name, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	var parsed premiumPayload
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ProviderError{Provider: p.name, Message: "malformed payload", Cause: err}
	}

	return p.mapPayload(&parsed), nil
}

// mapPayload converts the provider payload into the canonical shape.
func (p *PremiumProvider) mapPayload(payload *premiumPayload) *types.CandidateProfile {
	out := types.NewCandidateProfile()
	out.ExtractionMethod = p.name
	out.PersonalInfo.Name = payload.Name
	if out.PersonalInfo.Name == "" {
		out.PersonalInfo.Name = defaultName
	}
	out.PersonalInfo.Email = payload.Email
	out.PersonalInfo.Phone = payload.Phone
	out.Summary = payload.Summary

	for _, s := range payload.Skills {
		out.UpsertSkill(types.Skill{
			Name:     s.Name,
			Level:    levelFromLabel(s.Level),
			Category: "Other",
			Verified: true,
		})
	}
	for _, w := range payload.WorkHistory {
		out.Experience = append(out.Experience, types.ExperienceRecord{
			Position:    w.Title,
			Company:     w.Employer,
			Duration:    w.Dates,
			Description: w.Description,
		})
	}
	for _, e := range payload.Education {
		out.Education = append(out.Education, types.EducationRecord{
			Institution: e.School,
			Degree:      e.Degree,
			Year:        e.Year,
		})
	}
	return out
}

// levelFromLabel maps provider level labels onto the 0-100 scale.
func levelFromLabel(label string) int {
	switch label {
	case "expert":
		return types.LevelExpert
	case "advanced":
		return types.LevelAdvanced
	case "beginner":
		return types.LevelBeginner
	default:
		return types.LevelIntermediate
	}
}
