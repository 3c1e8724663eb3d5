// Package parsing implements the heuristic resume parsers: personal-info
// extraction and section segmentation. The parsing is intentionally
// keyword/regex based, not language understanding.
package parsing

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Phone patterns, tried in order: international/area/local with
	// separators, bare 10 digits, grouped 3-3-4.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}`),
		regexp.MustCompile(`\b\d{10}\b`),
		regexp.MustCompile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),
	}

	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/(?:in|pub|company)/[A-Za-z0-9_\-./]+`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-./]+`)
	urlRe      = regexp.MustCompile(`https?://[^\s)>\]}"']+`)

	// Capitalized 2-3 token name, e.g. "Jane Doe" or "Jane Q. Doe".
	nameRe = regexp.MustCompile(`^[A-Z][a-zA-Z'.-]+(?: [A-Z][a-zA-Z'.-]+){1,2}$`)

	// Location patterns, tried in order: "City, ST", "City, Country",
	// "City ST ZIP".
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:[ \t][A-Z][a-zA-Z]+)*,[ \t]*[A-Z]{2}\b`),
		regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:[ \t][A-Z][a-zA-Z]+)*,[ \t]*[A-Z][a-zA-Z]+(?:[ \t][A-Z][a-zA-Z]+)*\b`),
		regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:[ \t][A-Z][a-zA-Z]+)*[ \t][A-Z]{2}[ \t]\d{5}\b`),
	}
)

// socialDomains are excluded when picking a portfolio URL.
var socialDomains = []string{"linkedin.com", "github.com", "facebook.com", "twitter.com", "instagram.com"}

// ExtractPersonalInfo pulls contact details out of resume text.
// Every field falls back to the empty string; this function never fails.
func ExtractPersonalInfo(text string) types.PersonalInfo {
	return types.PersonalInfo{
		Name:      extractName(text),
		Email:     emailRe.FindString(text),
		Phone:     extractPhone(text),
		Location:  extractLocation(text),
		LinkedIn:  linkedinRe.FindString(text),
		GitHub:    githubRe.FindString(text),
		Portfolio: extractPortfolio(text),
	}
}

// extractName takes the first non-empty line unless it looks like an
// email, phone number, or URL; otherwise it scans the first 5 lines for
// a capitalized 2-3 token name.
func extractName(text string) string {
	lines := strings.Split(text, "\n")

	var first string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			first = line
			break
		}
	}
	if first != "" && !looksLikeContactLine(first) {
		return first
	}

	scanned := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > 5 {
			break
		}
		if looksLikeContactLine(line) {
			continue
		}
		if nameRe.MatchString(line) {
			return line
		}
	}
	return ""
}

func looksLikeContactLine(line string) bool {
	if emailRe.MatchString(line) || urlRe.MatchString(line) {
		return true
	}
	for _, re := range phoneRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		if match := re.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

// extractPortfolio returns the first URL whose domain is not one of the
// well-known social/code-hosting sites.
func extractPortfolio(text string) string {
	for _, candidate := range urlRe.FindAllString(text, -1) {
		parsed, err := url.Parse(candidate)
		if err != nil {
			continue
		}
		host := strings.ToLower(strings.TrimPrefix(parsed.Hostname(), "www."))
		social := false
		for _, domain := range socialDomains {
			if host == domain || strings.HasSuffix(host, "."+domain) {
				social = true
				break
			}
		}
		if !social {
			return candidate
		}
	}
	return ""
}

func extractLocation(text string) string {
	for _, re := range locationRes {
		if match := re.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}
