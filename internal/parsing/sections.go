package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Sections holds the parsed body of a resume, one field per section.
type Sections struct {
	Summary        string
	Experience     []types.ExperienceRecord
	Education      []types.EducationRecord
	Certifications []types.Certification
	Projects       []types.Project
}

// sectionHeaders maps a section key to the keywords that open it.
// A trimmed line containing one of these (and short enough to be a
// header) closes the current section and starts the new one.
var sectionHeaders = map[string][]string{
	"summary":        {"summary", "profile", "about", "objective"},
	"experience":     {"experience", "work history", "employment"},
	"education":      {"education", "academic", "qualifications"},
	"certifications": {"certifications", "credentials", "licenses"},
	"projects":       {"projects", "portfolio"},
}

// headerOrder fixes the match order so overlapping keywords resolve
// deterministically.
var headerOrder = []string{"summary", "experience", "education", "certifications", "projects"}

const (
	maxHeaderLen         = 40
	provisionalSummaryLn = 10
)

// SegmentSections splits resume text into structured section records.
// Lines seen before any header contribute to a provisional summary built
// from the first few lines of the document.
func SegmentSections(text string) Sections {
	var result Sections

	current := ""
	var buffer []string
	var preamble []string

	flush := func() {
		if current == "" || len(buffer) == 0 {
			buffer = nil
			return
		}
		dispatchSection(&result, current, buffer)
		buffer = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if key, ok := matchHeader(line); ok {
			flush()
			current = key
			continue
		}

		if current == "" {
			if len(preamble) < provisionalSummaryLn {
				preamble = append(preamble, line)
			}
			continue
		}
		buffer = append(buffer, line)
	}
	flush()

	if result.Summary == "" && len(preamble) > 0 {
		// Skip the contact block at the top; the rest approximates a summary.
		var kept []string
		for _, line := range preamble {
			if looksLikeContactLine(line) {
				continue
			}
			kept = append(kept, line)
		}
		if len(kept) > 1 {
			result.Summary = strings.Join(kept[1:], " ")
		}
	}

	return result
}

// matchHeader reports whether a line is a section header and which
// section it opens.
func matchHeader(line string) (string, bool) {
	if len(line) > maxHeaderLen {
		return "", false
	}
	lower := strings.ToLower(line)
	for _, key := range headerOrder {
		for _, keyword := range sectionHeaders[key] {
			if strings.Contains(lower, keyword) {
				return key, true
			}
		}
	}
	return "", false
}

func dispatchSection(result *Sections, section string, lines []string) {
	switch section {
	case "summary":
		if result.Summary == "" {
			result.Summary = strings.Join(lines, " ")
		}
	case "experience":
		result.Experience = append(result.Experience, parseExperience(lines)...)
	case "education":
		result.Education = append(result.Education, parseEducation(lines)...)
	case "certifications":
		for _, line := range lines {
			result.Certifications = append(result.Certifications, types.Certification{Name: line})
		}
	case "projects":
		for _, line := range lines {
			result.Projects = append(result.Projects, types.Project{Name: line})
		}
	}
}

// parseExperience builds one record per job-header line. A line
// containing " at " or " - " starts a record and splits into position
// and company; following lines accumulate into the description.
func parseExperience(lines []string) []types.ExperienceRecord {
	var records []types.ExperienceRecord
	var current *types.ExperienceRecord

	for _, line := range lines {
		position, company, isHeader := splitJobHeader(line)
		if isHeader {
			if current != nil {
				records = append(records, *current)
			}
			current = &types.ExperienceRecord{Position: position, Company: company}
			continue
		}
		if current != nil {
			if current.Description != "" {
				current.Description += " "
			}
			current.Description += line
		}
	}
	if current != nil {
		records = append(records, *current)
	}
	return records
}

func splitJobHeader(line string) (position, company string, ok bool) {
	for _, sep := range []string{" at ", " - "} {
		if idx := strings.Index(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):]), true
		}
	}
	return "", "", false
}

var (
	institutionKeywords = []string{"university", "college", "institute"}
	degreeKeywords      = []string{"bachelor", "master", "phd", "degree"}
)

// parseEducation starts a record on an institution line; a later line
// mentioning a degree keyword fills the record's degree.
func parseEducation(lines []string) []types.EducationRecord {
	var records []types.EducationRecord
	var current *types.EducationRecord

	for _, line := range lines {
		lower := strings.ToLower(line)
		if containsAny(lower, institutionKeywords) {
			if current != nil {
				records = append(records, *current)
			}
			current = &types.EducationRecord{Institution: line}
			continue
		}
		if current != nil && current.Degree == "" && containsAny(lower, degreeKeywords) {
			current.Degree = line
		}
	}
	if current != nil {
		records = append(records, *current)
	}
	return records
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
