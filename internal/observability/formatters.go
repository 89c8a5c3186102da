// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio-composer/internal/types"
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

// PrintScoredContent outputs a human-readable summary of a scored batch.
func (p *Printer) PrintScoredContent(scored []types.ScoredContent, category types.Category) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Category: %s\n", category))
	sb.WriteString(fmt.Sprintf("Items:    %d\n", len(scored)))
	sb.WriteString("\n")

	shown := len(scored)
	if shown > maxItemsToShow {
		shown = maxItemsToShow
	}

	for i := 0; i < shown; i++ {
		item := scored[i]
		title := item.Title
		if title == "" {
			title = item.ContentID
		}
		sb.WriteString(fmt.Sprintf("%d. [%.2f] %s (%s)\n", i+1, item.FinalScore, title, item.Type))
		sb.WriteString(fmt.Sprintf("   rel %.2f · qual %.2f · cred %.2f · eng %.2f · fresh %.2f\n",
			item.Scores.Relevance, item.Scores.Quality, item.Scores.Credibility,
			item.Scores.Engagement, item.Scores.Freshness))
	}
	if len(scored) > shown {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(scored)-shown))
	}

	p.printBox("Scored Content", strings.TrimRight(sb.String(), "\n"))
}

// PrintPortfolio outputs a human-readable summary of a composed document.
func (p *Printer) PrintPortfolio(portfolio *types.Portfolio) {
	if portfolio == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Portfolio: %s\n", portfolio.PortfolioID))
	sb.WriteString(fmt.Sprintf("Category:  %s\n", portfolio.Category))
	sb.WriteString(fmt.Sprintf("Title:     %s\n", portfolio.Meta.Title))
	sb.WriteString("\n")

	for _, section := range portfolio.Sections {
		blockTypes := make([]string, 0, len(section.Blocks))
		for _, block := range section.Blocks {
			blockTypes = append(blockTypes, string(block.BlockType))
		}
		summary := "empty"
		if len(blockTypes) > 0 {
			summary = strings.Join(blockTypes, ", ")
		}
		sb.WriteString(fmt.Sprintf("%d. %-12s %s\n", section.Order, section.SectionID, summary))
	}

	p.printBox("Composed Portfolio", strings.TrimRight(sb.String(), "\n"))
}
