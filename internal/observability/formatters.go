// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.PersonalInfo.Name))
	if profile.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", profile.PersonalInfo.Email))
	}
	if profile.PersonalInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", profile.PersonalInfo.Location))
	}
	sb.WriteString(fmt.Sprintf("Extracted:  %s\n", profile.ExtractionMethod))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(profile.Skills)))
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := profile.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %s)\n", skill.Name, skill.LevelName(), skill.Category))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Experience: %d records\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education:  %d records", len(profile.Education)))

	p.printBox("EXTRACTED PROFILE", sb.String())
}

// PrintAnalysis outputs a human-readable summary of the analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score:  %d/100\n", result.ATSScore.Overall))
	b := result.ATSScore.Breakdown
	sb.WriteString(fmt.Sprintf("  skills %d · experience %d · education %d\n", b.Skills, b.Experience, b.Education))
	sb.WriteString(fmt.Sprintf("  quality %d · market %d · formatting %d · keywords %d\n",
		b.ResumeQuality, b.MarketFit, b.Formatting, b.Keywords))
	sb.WriteString("\n")

	if len(result.RoleMatches) > 0 {
		sb.WriteString("Top Roles:\n")
		for _, role := range result.RoleMatches {
			sb.WriteString(fmt.Sprintf("  • %s (%d%%)\n", role.Category, role.MatchScore))
		}
		sb.WriteString("\n")
	}

	if len(result.JobMatches) > 0 {
		sb.WriteString(fmt.Sprintf("Job Matches (%d):\n", len(result.JobMatches)))
		count := min(len(result.JobMatches), maxItemsToShow)
		for i := 0; i < count; i++ {
			job := result.JobMatches[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s (%d%%)\n", job.Title, job.Company, job.MatchScore))
		}
		sb.WriteString("\n")
	}

	if len(result.ImprovementSuggestions) > 0 {
		sb.WriteString("Suggestions:\n")
		count := min(len(result.ImprovementSuggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.ImprovementSuggestions[i]))
		}
	}

	if result.DBSaveError {
		sb.WriteString("\nWARNING: analysis was not persisted")
	}

	p.printBox("ANALYSIS RESULT", strings.TrimRight(sb.String(), "\n"))
}
