// Package jobsearch queries the external job-search collaborator. The
// collaborator is a read-only oracle: postings flow in, nothing flows
// back out.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// searchTimeout bounds one collaborator call.
const searchTimeout = 10 * time.Second

// maxSearchSkills limits how many skills seed the query; the strongest
// skills come first in the profile so truncation keeps the signal.
const maxSearchSkills = 5

// Client calls the job-search service over HTTP.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient creates a job-search client. An empty endpoint leaves the
// client unconfigured; Search then returns no postings.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: searchTimeout},
	}
}

// Configured reports whether the client can reach a real service.
func (c *Client) Configured() bool { return c.endpoint != "" }

// searchResponse is the collaborator's wire shape.
type searchResponse struct {
	Jobs []struct {
		Title        string   `json:"title"`
		Company      string   `json:"company"`
		Location     string   `json:"location"`
		Salary       string   `json:"salary"`
		Description  string   `json:"description"`
		Requirements []string `json:"requirements"`
		URL          string   `json:"url"`
	} `json:"jobs"`
}

// Search fetches postings matching the given skills and location.
func (c *Client) Search(ctx context.Context, skills []string, location string) ([]types.JobPosting, error) {
	if !c.Configured() {
		return []types.JobPosting{}, nil
	}

	if len(skills) > maxSearchSkills {
		skills = skills[:maxSearchSkills]
	}
	query := url.Values{}
	query.Set("skills", strings.Join(skills, ","))
	if location != "" {
		query.Set("location", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating job-search request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job-search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("job-search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding job-search response: %w", err)
	}

	postings := make([]types.JobPosting, 0, len(payload.Jobs))
	for _, job := range payload.Jobs {
		postings = append(postings, types.JobPosting{
			Title:        job.Title,
			Company:      job.Company,
			Location:     job.Location,
			Salary:       job.Salary,
			Description:  stripHTML(job.Description),
			Requirements: job.Requirements,
			URL:          job.URL,
		})
	}
	return postings, nil
}

// stripHTML flattens markup-laden descriptions into plain text. Boards
// routinely return HTML fragments here.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}
