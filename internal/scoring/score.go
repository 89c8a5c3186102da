// Package scoring computes deterministic multi-criteria scores for normalized content.
package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/jonathan/portfolio-composer/internal/types"
)

// ScoreContent scores a single content item against a category's weight
// vector. The result is deterministic apart from the freshness sub-score,
// which is evaluated at the current time.
func ScoreContent(content types.NormalizedContent, category types.Category) types.ScoredContent {
	return ScoreContentAt(content, category, time.Now())
}

// ScoreContentAt scores a single content item with an explicit reference time
// for the freshness sub-score. Missing extracted_data fields contribute zero;
// scoring never fails.
func ScoreContentAt(content types.NormalizedContent, category types.Category, now time.Time) types.ScoredContent {
	scores := types.ContentScores{
		Relevance:   relevanceScore(&content, category),
		Quality:     qualityScore(&content),
		Credibility: credibilityScore(&content),
		Engagement:  engagementScore(&content),
		Freshness:   freshnessScore(&content, now),
	}

	weights := category.Weights()
	final := scores.Relevance*weights.Relevance +
		scores.Quality*weights.Quality +
		scores.Credibility*weights.Credibility +
		scores.Engagement*weights.Engagement +
		scores.Freshness*weights.Freshness

	return types.ScoredContent{
		NormalizedContent: content,
		Scores:            scores,
		FinalScore:        round2(final),
	}
}

// ScoreContentBatch scores every item and returns them sorted by final score,
// descending. The sort is stable: items with equal final scores keep their
// input order. Stability is a documented contract, not an accident.
func ScoreContentBatch(contents []types.NormalizedContent, category types.Category) []types.ScoredContent {
	return ScoreContentBatchAt(contents, category, time.Now())
}

// ScoreContentBatchAt is ScoreContentBatch with an explicit reference time.
func ScoreContentBatchAt(contents []types.NormalizedContent, category types.Category, now time.Time) []types.ScoredContent {
	scored := make([]types.ScoredContent, 0, len(contents))
	for _, content := range contents {
		scored = append(scored, ScoreContentAt(content, category, now))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	return scored
}

// round2 rounds to two decimal places, the precision of the wire contract.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
