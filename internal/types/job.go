package types

// JobPosting is a live job opportunity returned by the job-search
// collaborator. Read-only to the pipeline.
type JobPosting struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	URL          string   `json:"url,omitempty"`
}

// MatchResult is the skill-overlap score between a candidate and a
// single job posting. MatchScore is 0-100 and capped at 95.
type MatchResult struct {
	MatchScore    int      `json:"matchScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// JobMatch pairs a posting with its match result for the output document.
type JobMatch struct {
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Salary        string   `json:"salary"`
	URL           string   `json:"url,omitempty"`
	MatchScore    int      `json:"matchScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}
