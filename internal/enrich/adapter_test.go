package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// scriptedClient returns canned responses in order.
type scriptedClient struct {
	responses []string
	errs      []error
	calls     int
}

func (c *scriptedClient) GenerateJSON(context.Context, string) (string, error) {
	i := c.calls
	c.calls++
	var resp string
	var err error
	if i < len(c.responses) {
		resp = c.responses[i]
	}
	if i < len(c.errs) {
		err = c.errs[i]
	}
	return resp, err
}

func (c *scriptedClient) Close() error { return nil }

const validEnrichment = `{
	"atsScore": {
		"overall": 82,
		"breakdown": {"skills": 85, "experience": 80, "education": 75, "resumeQuality": 78, "marketFit": 81, "formatting": 88, "keywords": 79}
	},
	"skillAssessment": [{"name": "Go", "level": 90, "comment": "strong"}],
	"improvementSuggestions": ["Add quantified impact to experience bullets"]
}`

func testProfile() *types.CandidateProfile {
	p := types.NewCandidateProfile()
	p.PersonalInfo.Name = "Jane Doe"
	p.Skills = append(p.Skills, types.Skill{Name: "Go", Level: 90, Category: "Programming"})
	return p
}

func newTestAdapter(t *testing.T, client Client) *Adapter {
	t.Helper()
	adapter, err := NewAdapter(client)
	require.NoError(t, err)
	return adapter
}

func TestEnrich_ValidResponse(t *testing.T) {
	client := &scriptedClient{responses: []string{validEnrichment}}
	adapter := newTestAdapter(t, client)

	enrichment, err := adapter.Enrich(context.Background(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, 82, enrichment.ATSScore.Overall)
	assert.Equal(t, 85, enrichment.ATSScore.Breakdown.Skills)
	require.Len(t, enrichment.SkillAssessment, 1)
	assert.Equal(t, "Go", enrichment.SkillAssessment[0].Name)
	assert.Equal(t, []string{"Add quantified impact to experience bullets"}, enrichment.ImprovementSuggestions)
	assert.Equal(t, 1, client.calls)
}

func TestEnrich_RescuesJSONFromProse(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Sure! Here is the assessment:\n" + validEnrichment + "\nLet me know if you need anything else.",
	}}
	adapter := newTestAdapter(t, client)

	enrichment, err := adapter.Enrich(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, 82, enrichment.ATSScore.Overall)
}

func TestEnrich_RetriesOnceThenSucceeds(t *testing.T) {
	client := &scriptedClient{
		responses: []string{"", validEnrichment},
		errs:      []error{errors.New("transient"), nil},
	}
	adapter := newTestAdapter(t, client)

	enrichment, err := adapter.Enrich(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, 82, enrichment.ATSScore.Overall)
	assert.Equal(t, 2, client.calls)
}

func TestEnrich_MissingKeyRejectedWhole(t *testing.T) {
	// Valid JSON, but improvementSuggestions is absent. The contract
	// demands all three top-level keys; partial acceptance is not a thing.
	partial := `{"atsScore": {"overall": 70}, "skillAssessment": []}`
	client := &scriptedClient{responses: []string{partial, partial}}
	adapter := newTestAdapter(t, client)

	_, err := adapter.Enrich(context.Background(), testProfile())
	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, maxAttempts, client.calls)
}

func TestEnrich_NoJSONObjectAtAll(t *testing.T) {
	client := &scriptedClient{responses: []string{"I cannot help with that.", "Still no JSON."}}
	adapter := newTestAdapter(t, client)

	_, err := adapter.Enrich(context.Background(), testProfile())
	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestEnrich_TransportFailureBothAttempts(t *testing.T) {
	boom := errors.New("connection reset")
	client := &scriptedClient{errs: []error{boom, boom}}
	adapter := newTestAdapter(t, client)

	_, err := adapter.Enrich(context.Background(), testProfile())
	require.Error(t, err)
	assert.Equal(t, maxAttempts, client.calls)
}

func TestEnrich_FractionalScoresRounded(t *testing.T) {
	client := &scriptedClient{responses: []string{`{
		"atsScore": {"overall": 81.6, "breakdown": {"skills": 74.4}},
		"skillAssessment": [],
		"improvementSuggestions": []
	}`}}
	adapter := newTestAdapter(t, client)

	enrichment, err := adapter.Enrich(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, 82, enrichment.ATSScore.Overall)
	assert.Equal(t, 74, enrichment.ATSScore.Breakdown.Skills)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock(`{"a":1}`))
}
