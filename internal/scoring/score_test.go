package scoring

import (
	"testing"
	"time"

	"github.com/jonathan/portfolio-composer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreContentAt_FinalScoreIsWeightedAndRounded(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	content := types.NormalizedContent{
		ContentID: "c1",
		Type:      types.ContentTypeText,
		Title:     "untitled",
		CreatedAt: now.Add(-10 * 24 * time.Hour),
	}

	scored := ScoreContentAt(content, types.CategoryBusiness, now)

	w := types.CategoryBusiness.Weights()
	expected := scored.Scores.Relevance*w.Relevance +
		scored.Scores.Quality*w.Quality +
		scored.Scores.Credibility*w.Credibility +
		scored.Scores.Engagement*w.Engagement +
		scored.Scores.Freshness*w.Freshness

	assert.InDelta(t, expected, scored.FinalScore, 0.005, "final score must be the weighted sum rounded to 2 decimals")
	assert.Equal(t, scored.FinalScore, float64(int(scored.FinalScore*100+0.5))/100, "final score must carry at most 2 decimals")
}

func TestScoreContentAt_Deterministic(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	content := types.NormalizedContent{
		ContentID:   "c1",
		Type:        types.ContentTypeVideo,
		Source:      types.SourceYouTube,
		Title:       "Showreel",
		Description: "A short highlight reel",
		CreatedAt:   now.Add(-40 * 24 * time.Hour),
		ExtractedData: map[string]any{
			types.KeyViewCount: float64(50_000),
		},
	}

	first := ScoreContentAt(content, types.CategoryEntertainment, now)
	second := ScoreContentAt(content, types.CategoryEntertainment, now)
	assert.Equal(t, first, second)
}

func TestScoreContentBatchAt_SortedDescending(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	contents := []types.NormalizedContent{
		{ContentID: "old-text", Type: types.ContentTypeText, CreatedAt: now.Add(-800 * 24 * time.Hour)},
		{
			ContentID: "hot-video",
			Type:      types.ContentTypeVideo,
			Source:    types.SourceYouTube,
			CreatedAt: now.Add(-5 * 24 * time.Hour),
			ExtractedData: map[string]any{
				types.KeyViewCount: float64(500_000),
				types.KeyLikeCount: float64(40_000),
			},
		},
		{ContentID: "plain-image", Type: types.ContentTypeImage, CreatedAt: now.Add(-100 * 24 * time.Hour)},
	}

	scored := ScoreContentBatchAt(contents, types.CategoryInfluencers, now)

	require.Len(t, scored, 3)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].FinalScore, scored[i].FinalScore)
	}
	assert.Equal(t, "hot-video", scored[0].ContentID)
}

func TestScoreContentBatchAt_StableForEqualScores(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Identical items apart from their ids score identically; the batch
	// must keep their input order.
	contents := make([]types.NormalizedContent, 0, 4)
	for _, id := range []string{"first", "second", "third", "fourth"} {
		contents = append(contents, types.NormalizedContent{
			ContentID: id,
			Type:      types.ContentTypeImage,
			Title:     "Poster",
			CreatedAt: now.Add(-3 * 24 * time.Hour),
		})
	}

	scored := ScoreContentBatchAt(contents, types.CategoryDesign, now)

	require.Len(t, scored, 4)
	assert.Equal(t, "first", scored[0].ContentID)
	assert.Equal(t, "second", scored[1].ContentID)
	assert.Equal(t, "third", scored[2].ContentID)
	assert.Equal(t, "fourth", scored[3].ContentID)
}

func TestScoreContentBatchAt_HigherEngagementWinsForInfluencers(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	contents := []types.NormalizedContent{
		{
			ContentID: "quiet-video",
			Type:      types.ContentTypeVideo,
			CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ContentID: "viral-video",
			Type:      types.ContentTypeVideo,
			Source:    types.SourceYouTube,
			CreatedAt: now.Add(-2 * 24 * time.Hour),
			ExtractedData: map[string]any{
				types.KeyViewCount: float64(2_000_000),
				types.KeyLikeCount: float64(150_000),
			},
		},
	}

	scored := ScoreContentBatchAt(contents, types.CategoryInfluencers, now)

	require.Len(t, scored, 2)
	assert.Equal(t, "viral-video", scored[0].ContentID)
	assert.Greater(t, scored[0].Scores.Engagement, scored[1].Scores.Engagement)
}

func TestScoreContentAt_MissingExtractedDataNeverPanics(t *testing.T) {
	content := types.NormalizedContent{ContentID: "bare"}

	assert.NotPanics(t, func() {
		for _, category := range types.Categories {
			ScoreContentAt(content, category, time.Now())
		}
	})
}

func TestKeywordsFor_EveryCategoryHasKeywords(t *testing.T) {
	for _, category := range types.Categories {
		assert.NotEmptyf(t, KeywordsFor(category), "category %s has no keyword list", category)
	}
}
