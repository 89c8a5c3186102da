// Package scoring computes deterministic multi-criteria scores for normalized content.
package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/portfolio-composer/internal/types"
)

// Boost and threshold constants for the sub-score heuristics.
const (
	keywordNormalizer = 5.0

	qualityBase           = 0.5
	credibilityBase       = 0.3
	engagementBase        = 0.3
	longDescriptionLength = 50
	readmePreviewLength   = 200

	hdHeight       = 720
	ultraHDHeight  = 2160
	largeImageEdge = 1000
)

// relevanceScore counts distinct category keywords appearing in the item's
// searchable text, normalized by keywordNormalizer and capped at 1.0, plus a
// fixed type/source boost per category.
func relevanceScore(content *types.NormalizedContent, category types.Category) float64 {
	searchable := strings.ToLower(content.Title + " " + content.Description + " " + content.ExtractedString(types.KeyText))

	matches := 0
	for _, keyword := range categoryKeywords[category] {
		if strings.Contains(searchable, keyword) {
			matches++
		}
	}

	score := float64(matches) / keywordNormalizer
	if score > 1.0 {
		score = 1.0
	}

	switch {
	case category == types.CategoryTech && content.Source == types.SourceGitHub:
		score += 0.2
	case category == types.CategoryEntertainment && content.Type == types.ContentTypeVideo:
		score += 0.2
	case category == types.CategoryDesign && content.Type == types.ContentTypeImage:
		score += 0.2
	case category == types.CategoryFinance && content.Type == types.ContentTypePDF:
		score += 0.1
	}

	return clamp01(score)
}

// qualityScore starts at a neutral base and rewards richer assets: thumbnails,
// substantial descriptions, and type-specific fidelity signals.
func qualityScore(content *types.NormalizedContent) float64 {
	score := qualityBase

	if content.ExtractedString(types.KeyThumbnailURL) != "" {
		score += 0.1
	}
	if len(content.Description) > longDescriptionLength {
		score += 0.1
	}

	switch content.Type {
	case types.ContentTypeVideo:
		height := content.ExtractedFloat(types.KeyHeight)
		if height >= hdHeight {
			score += 0.15
		}
		if height >= ultraHDHeight {
			score += 0.1
		}
		if content.ExtractedFloat(types.KeyDuration) > 0 {
			score += 0.1
		}
	case types.ContentTypeImage:
		if content.ExtractedFloat(types.KeyWidth) >= largeImageEdge && content.ExtractedFloat(types.KeyHeight) >= largeImageEdge {
			score += 0.15
		}
	case types.ContentTypePDF:
		if content.ExtractedString(types.KeyText) != "" {
			score += 0.15
		}
		if content.ExtractedFloat(types.KeyPageCount) > 1 {
			score += 0.05
		}
	}

	if content.Source == types.SourceGitHub && len(content.ExtractedString(types.KeyReadmePreview)) > readmePreviewLength {
		score += 0.15
	}

	return clamp01(score)
}

// credibilityScore rewards verifiable platforms and audience signals,
// penalizing bare external links.
func credibilityScore(content *types.NormalizedContent) float64 {
	score := credibilityBase

	if content.Source == types.SourceYouTube || content.Source == types.SourceGitHub {
		score += 0.2
	}

	if content.Source == types.SourceYouTube {
		views := content.ExtractedFloat(types.KeyViewCount)
		for _, threshold := range []float64{1_000, 10_000, 100_000} {
			if views >= threshold {
				score += 0.1
			}
		}
	}

	if content.Source == types.SourceGitHub {
		stars := content.ExtractedFloat(types.KeyStars)
		if stars >= 10 {
			score += 0.1
		}
		if stars >= 100 {
			score += 0.1
		}
		if stars >= 1_000 {
			score += 0.15
		}
	}

	switch content.Type {
	case types.ContentTypePDF:
		score += 0.15
	case types.ContentTypeExternalLink:
		score -= 0.1
	}

	return clamp01(score)
}

// engagementScore estimates how likely a viewer is to interact with the item.
func engagementScore(content *types.NormalizedContent) float64 {
	score := engagementBase

	switch content.Type {
	case types.ContentTypeVideo:
		score += 0.25
	case types.ContentTypeImage:
		score += 0.2
	}

	if content.Source == types.SourceYouTube {
		views := content.ExtractedFloat(types.KeyViewCount)
		if views >= 10_000 {
			score += 0.15
		}
		if views >= 100_000 {
			score += 0.15
		}
		if views > 0 && content.ExtractedFloat(types.KeyLikeCount)/views > 0.03 {
			score += 0.1
		}
	}

	if content.Type == types.ContentTypeExternalLink {
		switch content.Source {
		case types.SourceInstagram, types.SourceTikTok, types.SourceLinkedIn:
			score += 0.15
		}
	}

	if content.Type == types.ContentTypeText || content.Type == types.ContentTypePDF {
		score -= 0.1
	}

	return clamp01(score)
}

// freshnessScore is a step function on the item's age in whole days at the
// given reference time. Boundaries are exact: day 30 already drops to 0.8.
func freshnessScore(content *types.NormalizedContent, now time.Time) float64 {
	ageDays := int(now.Sub(content.CreatedAt).Hours() / 24)

	switch {
	case ageDays < 30:
		return 1.0
	case ageDays < 90:
		return 0.8
	case ageDays < 365:
		return 0.6
	case ageDays < 730:
		return 0.4
	default:
		return 0.2
	}
}

// clamp01 bounds a score to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
