// Package types defines the canonical data model shared by the analysis pipeline.
package types

import "strings"

// Proficiency levels on the 0-100 scale produced by the skill leveler.
const (
	LevelExpert       = 90
	LevelAdvanced     = 75
	LevelIntermediate = 60
	LevelBeginner     = 40
)

// PersonalInfo holds contact details extracted from a resume.
// Fields are empty strings when extraction found nothing; never omitted.
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// Skill is a detected skill with its estimated proficiency.
// Name is the identity: within one profile, skill names are unique
// case-insensitively and later detections update the existing entry.
type Skill struct {
	Name            string  `json:"name"`
	Level           int     `json:"level"` // 0-100
	Category        string  `json:"category"`
	ExperienceYears float64 `json:"experienceYears"`
	Verified        bool    `json:"verified"`
}

// LevelName maps the numeric level onto the ordinal proficiency bands.
func (s Skill) LevelName() string {
	switch {
	case s.Level >= LevelExpert:
		return "Expert"
	case s.Level >= LevelAdvanced:
		return "Advanced"
	case s.Level >= 50:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

// ExperienceRecord is one job entry parsed from the experience section.
type ExperienceRecord struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationRecord is one entry parsed from the education section.
type EducationRecord struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
}

// Certification is a single certification line from the resume.
type Certification struct {
	Name string `json:"name"`
}

// Project is a single project line from the resume.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CandidateProfile is the canonical structured record produced from a
// resume. It is built exactly once per request by the profile builder;
// downstream scorers and matchers only read it.
type CandidateProfile struct {
	PersonalInfo     PersonalInfo       `json:"personalInfo"`
	Summary          string             `json:"summary"`
	Skills           []Skill            `json:"skills"`
	Experience       []ExperienceRecord `json:"experience"`
	Education        []EducationRecord  `json:"education"`
	Certifications   []Certification    `json:"certifications"`
	Projects         []Project          `json:"projects"`
	ExtractionMethod string             `json:"extractionMethod"`
}

// NewCandidateProfile returns a profile with every collection initialized,
// so callers never see null-valued fields in serialized output.
func NewCandidateProfile() *CandidateProfile {
	return &CandidateProfile{
		Skills:         []Skill{},
		Experience:     []ExperienceRecord{},
		Education:      []EducationRecord{},
		Certifications: []Certification{},
		Projects:       []Project{},
	}
}

// UpsertSkill adds a skill to the profile or updates the existing entry
// when one with the same case-insensitive name is already present.
func (p *CandidateProfile) UpsertSkill(skill Skill) {
	key := strings.ToLower(strings.TrimSpace(skill.Name))
	if key == "" {
		return
	}
	for i := range p.Skills {
		if strings.ToLower(p.Skills[i].Name) == key {
			p.Skills[i].Level = skill.Level
			if skill.Category != "" {
				p.Skills[i].Category = skill.Category
			}
			if skill.ExperienceYears > 0 {
				p.Skills[i].ExperienceYears = skill.ExperienceYears
			}
			return
		}
	}
	p.Skills = append(p.Skills, skill)
}

// SkillNames returns the profile's skill names in detection order.
func (p *CandidateProfile) SkillNames() []string {
	names := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		names[i] = s.Name
	}
	return names
}
