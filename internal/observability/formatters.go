// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/haripriyarao26/find-a-path/internal/types"
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

// PrintAnalysisResult outputs a human-readable summary of a skill analysis.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills analyzed: %d\n", len(result.Skills)))
	if result.DroppedSkills > 0 {
		sb.WriteString(fmt.Sprintf("Skills excluded: %d\n", result.DroppedSkills))
	}
	sb.WriteString("\n")

	sb.WriteString("Top categories:\n")
	top := result.TopCategories
	if len(top) > maxItemsToShow {
		top = top[:maxItemsToShow]
	}
	for i, rc := range top {
		strength := result.CategoryAnalysis[rc.Category].Strength
		sb.WriteString(fmt.Sprintf("  %d. %s (%.3f, %s)\n", i+1, rc.Category, rc.Score, strength))
	}

	p.printBox("Skill Analysis", sb.String())

	if len(result.RecommendedSkills) > 0 {
		p.printBox("Recommended Skills", strings.Join(result.RecommendedSkills, "\n"))
	}
}

// PrintExtractedSkills outputs the skills pulled from a resume document.
func (p *Printer) PrintExtractedSkills(skills []string) {
	if len(skills) == 0 {
		p.printBox("Extracted Skills", "(none found)")
		return
	}
	p.printBox("Extracted Skills", strings.Join(skills, "\n"))
}
