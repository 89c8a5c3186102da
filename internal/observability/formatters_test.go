package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/portfolio-composer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintScoredContent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scored := []types.ScoredContent{
		{
			NormalizedContent: types.NormalizedContent{
				ContentID: "c1",
				Type:      types.ContentTypeVideo,
				Title:     "Showreel",
			},
			Scores:     types.ContentScores{Relevance: 0.8, Quality: 0.7, Credibility: 0.6, Engagement: 0.9, Freshness: 1.0},
			FinalScore: 0.81,
		},
		{
			NormalizedContent: types.NormalizedContent{
				ContentID: "c2",
				Type:      types.ContentTypeText,
			},
			FinalScore: 0.35,
		},
	}

	p.PrintScoredContent(scored, types.CategoryTech)
	output := buf.String()

	assert.Contains(t, output, "Scored Content")
	assert.Contains(t, output, "tech")
	assert.Contains(t, output, "Showreel")
	assert.Contains(t, output, "0.81")
	// Untitled items fall back to their id.
	assert.Contains(t, output, "c2")
}

func TestPrintScoredContent_TruncatesLongBatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scored := make([]types.ScoredContent, 8)
	for i := range scored {
		scored[i] = types.ScoredContent{
			NormalizedContent: types.NormalizedContent{
				ContentID: "item",
				Type:      types.ContentTypeImage,
			},
		}
	}

	p.PrintScoredContent(scored, types.CategoryDesign)

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintPortfolio(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	portfolio := &types.Portfolio{
		PortfolioID: "p-1",
		Category:    types.CategoryTech,
		Meta:        types.PortfolioMeta{Title: "My Portfolio"},
		Sections: []types.Section{
			{
				SectionID: types.SectionHook,
				Order:     1,
				Blocks: []types.Block{
					{BlockID: "b1", BlockType: types.BlockMedia},
				},
			},
			{SectionID: types.SectionCredibility, Order: 2},
			{
				SectionID: types.SectionAction,
				Order:     5,
				Blocks: []types.Block{
					{BlockID: "b2", BlockType: types.BlockCTA},
				},
			},
		},
	}

	p.PrintPortfolio(portfolio)
	output := buf.String()

	assert.Contains(t, output, "Composed Portfolio")
	assert.Contains(t, output, "p-1")
	assert.Contains(t, output, "My Portfolio")
	assert.Contains(t, output, "media")
	assert.Contains(t, output, "empty")
	assert.Contains(t, output, "cta")
}

func TestPrintPortfolio_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPortfolio(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("Title", strings.Repeat("x", 120))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
