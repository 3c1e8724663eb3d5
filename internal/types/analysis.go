package types

// AnalysisVersion tags every output document with the analyzer revision.
const AnalysisVersion = "1.0"

// ScoreBreakdown holds the named 0-100 components of an ATS score.
type ScoreBreakdown struct {
	Skills        int `json:"skills"`
	Experience    int `json:"experience"`
	Education     int `json:"education"`
	ResumeQuality int `json:"resumeQuality"`
	MarketFit     int `json:"marketFit"`
	Formatting    int `json:"formatting"`
	Keywords      int `json:"keywords"`
}

// ATSScore is the composite 0-100 fitness estimate with its breakdown.
type ATSScore struct {
	Overall   int            `json:"overall"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// RoleMatch compares the candidate against one role of the static
// role taxonomy.
type RoleMatch struct {
	Category      string   `json:"category"`
	MatchScore    int      `json:"matchScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// SkillGap names the skills missing for a role, with a recommendation.
type SkillGap struct {
	Category       string   `json:"category"`
	Missing        []string `json:"missing"`
	Recommendation string   `json:"recommendation"`
	Priority       string   `json:"priority,omitempty"`
}

// SkillAssessment is one entry of the AI enrichment's per-skill review.
type SkillAssessment struct {
	Name    string `json:"name"`
	Level   int    `json:"level"`
	Comment string `json:"comment,omitempty"`
}

// Enrichment is the accepted output of the AI enrichment adapter.
// When present it supersedes the deterministic scorer for the same
// fields; it is never partially merged with it.
type Enrichment struct {
	ATSScore               ATSScore          `json:"atsScore"`
	SkillAssessment        []SkillAssessment `json:"skillAssessment"`
	ImprovementSuggestions []string          `json:"improvementSuggestions"`
}

// AnalysisResult is the complete output document. Every field is always
// present; quality may degrade under failures but structure never does.
type AnalysisResult struct {
	PersonalInfo           PersonalInfo       `json:"personalInfo"`
	Summary                string             `json:"summary"`
	Skills                 []Skill            `json:"skills"`
	Experience             []ExperienceRecord `json:"experience"`
	Education              []EducationRecord  `json:"education"`
	Certifications         []Certification    `json:"certifications"`
	Projects               []Project          `json:"projects"`
	ATSScore               ATSScore           `json:"atsScore"`
	JobMatches             []JobMatch         `json:"jobMatches"`
	RoleMatches            []RoleMatch        `json:"roleMatches"`
	SkillGaps              []SkillGap         `json:"skillGaps"`
	ImprovementSuggestions []string           `json:"improvementSuggestions"`
	Keywords               []string           `json:"keywords"`
	ExtractionMethod       string             `json:"extractionMethod"`
	AnalysisVersion        string             `json:"analysisVersion"`
	DBSaveError            bool               `json:"dbSaveError,omitempty"`
}

// NewAnalysisResult returns a result with all collections initialized.
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Skills:                 []Skill{},
		Experience:             []ExperienceRecord{},
		Education:              []EducationRecord{},
		Certifications:         []Certification{},
		Projects:               []Project{},
		JobMatches:             []JobMatch{},
		RoleMatches:            []RoleMatch{},
		SkillGaps:              []SkillGap{},
		ImprovementSuggestions: []string{},
		Keywords:               []string{},
		AnalysisVersion:        AnalysisVersion,
	}
}
