// Package composing assembles scored content into the fixed portfolio document.
package composing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-composer/internal/types"
)

const (
	previewLength     = 200
	maxTags           = 5
	maxMetrics        = 4
	maxTopRepos       = 3
	defaultPadding    = "medium"
	placeholderBefore = "/assets/placeholders/before.png"
)

// textTypeHeaders maps a text item's text_type to its block header label.
var textTypeHeaders = map[string]string{
	"intro":       "Introduction",
	"bio":         "About Me",
	"about":       "About",
	"description": "Overview",
	"general":     "Notes",
}

// BuildBlock renders a content item into the given block variant. Builders
// never fail: missing extracted fields degrade to empty or placeholder
// values. The cta variant ignores the content entirely.
func BuildBlock(content types.ScoredContent, blockType types.BlockType, sectionID types.SectionID) types.Block {
	return BuildBlockAt(content, blockType, sectionID, time.Now())
}

// BuildBlockAt is BuildBlock with an explicit timestamp for builders that
// stamp the current time (timeline entries).
func BuildBlockAt(content types.ScoredContent, blockType types.BlockType, sectionID types.SectionID, now time.Time) types.Block {
	initial := "collapsed"
	if sectionID == types.SectionHook {
		initial = "expanded"
	}
	priority := "medium"
	if content.FinalScore > 0.7 {
		priority = "high"
	}

	block := types.Block{
		BlockID:   uuid.NewString(),
		BlockType: blockType,
		Visibility: types.BlockVisibility{
			Initial:  initial,
			Priority: priority,
		},
		Style: types.BlockStyle{Padding: defaultPadding},
	}

	switch blockType {
	case types.BlockMedia:
		block.Content = buildMediaContent(content)
	case types.BlockExpandableText:
		block.Content = buildExpandableTextContent(content)
	case types.BlockMetric:
		block.Content = buildMetricContent(content)
	case types.BlockComparison:
		block.Content = buildComparisonContent(content)
	case types.BlockGallery:
		block.Content = buildGalleryContent(content)
	case types.BlockTimeline:
		block.Content = buildTimelineContent(content, now)
	case types.BlockExternalLink:
		block.Content = buildExternalLinkContent(content)
	case types.BlockScrollContainer:
		block.Content = buildScrollContainerContent(content, sectionID, now)
	case types.BlockHotspotMedia:
		block.Content = buildHotspotMediaContent(content)
	case types.BlockCTA:
		block.Content = buildCTAContent()
	default:
		block.BlockType = types.BlockExpandableText
		block.Content = buildExpandableTextContent(content)
	}

	return block
}

// mediaURL picks the primary media source: an uploaded file wins over an
// extracted embed URL.
func mediaURL(content *types.ScoredContent) string {
	if content.FilePath != "" {
		return content.FilePath
	}
	return content.ExtractedString(types.KeyEmbedURL)
}

// thumbnailURL picks the display thumbnail, falling back to the file itself.
func thumbnailURL(content *types.ScoredContent) string {
	if t := content.ExtractedString(types.KeyThumbnailURL); t != "" {
		return t
	}
	return content.FilePath
}

func buildMediaContent(content types.ScoredContent) *types.MediaContent {
	isVideo := content.Type == types.ContentTypeVideo || content.Source == types.SourceYouTube

	mc := &types.MediaContent{
		MediaType: "image",
		Sources:   []types.MediaSource{{URL: mediaURL(&content)}},
		Thumbnail: thumbnailURL(&content),
	}
	if isVideo {
		mc.MediaType = "video"
		mc.Playback = &types.PlaybackOptions{Autoplay: true, Loop: true, Muted: true}
	}
	return mc
}

func buildExpandableTextContent(content types.ScoredContent) *types.ExpandableTextContent {
	fullText := content.ExtractedString(types.KeyText)
	if fullText == "" {
		fullText = content.Description
	}

	// GitHub profiles get a synthesized summary instead of raw extracted text.
	if content.Source == types.SourceGitHub && content.ExtractedBool(types.KeyIsProfile) {
		fullText = githubProfileText(&content)
	}

	preview := fullText
	if len(preview) > previewLength {
		preview = preview[:previewLength] + "..."
	}

	header := content.Title
	if content.Type == types.ContentTypeText {
		if label, ok := textTypeHeaders[content.ExtractedString(types.KeyTextType)]; ok {
			header = label
		}
	}

	return &types.ExpandableTextContent{
		Header:   header,
		Preview:  preview,
		FullText: fullText,
		Tags:     contentTags(&content),
	}
}

// githubProfileText synthesizes a readable profile summary from extracted
// bio, counts, location, company, and up to three top repositories.
func githubProfileText(content *types.ScoredContent) string {
	var parts []string

	if bio := content.ExtractedString(types.KeyBio); bio != "" {
		parts = append(parts, bio)
	}

	followers := content.ExtractedFloat(types.KeyFollowers)
	repos := content.ExtractedFloat(types.KeyPublicRepos)
	if followers > 0 || repos > 0 {
		parts = append(parts, fmt.Sprintf("%d followers, %d public repositories.", int(followers), int(repos)))
	}

	if location := content.ExtractedString(types.KeyLocation); location != "" {
		parts = append(parts, "Based in "+location+".")
	}
	if company := content.ExtractedString(types.KeyCompany); company != "" {
		parts = append(parts, "Works at "+company+".")
	}

	if repoLines := topRepositoryLines(content); len(repoLines) > 0 {
		parts = append(parts, "Top repositories: "+strings.Join(repoLines, "; ")+".")
	}

	return strings.Join(parts, " ")
}

// topRepositoryLines formats up to maxTopRepos entries from the extracted
// top_repositories list (name, description, star count).
func topRepositoryLines(content *types.ScoredContent) []string {
	raw, ok := content.ExtractedData[types.KeyTopRepositories].([]any)
	if !ok {
		return nil
	}

	var lines []string
	for _, entry := range raw {
		if len(lines) >= maxTopRepos {
			break
		}
		repo, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := repo["name"].(string)
		if name == "" {
			continue
		}
		line := name
		if desc, _ := repo["description"].(string); desc != "" {
			line += " (" + desc + ")"
		}
		if stars, ok := repo["stars"].(float64); ok && stars > 0 {
			line += fmt.Sprintf(", %d stars", int(stars))
		}
		lines = append(lines, line)
	}
	return lines
}

// contentTags collects up to maxTags tags from the extracted tags, topics,
// and skills lists, in that order.
func contentTags(content *types.ScoredContent) []string {
	var tags []string
	for _, key := range []string{types.KeyTags, types.KeyTopics, types.KeySkills} {
		for _, tag := range content.ExtractedStrings(key) {
			if len(tags) >= maxTags {
				return tags
			}
			tags = append(tags, tag)
		}
	}
	return tags
}

func buildMetricContent(content types.ScoredContent) *types.MetricContent {
	var metrics []types.Metric

	if content.Source == types.SourceYouTube {
		if views := content.ExtractedFloat(types.KeyViewCount); views > 0 {
			metrics = append(metrics, types.Metric{Label: "Views", Value: views})
		}
		if likes := content.ExtractedFloat(types.KeyLikeCount); likes > 0 {
			metrics = append(metrics, types.Metric{Label: "Likes", Value: likes})
		}
	}

	if content.Source == types.SourceGitHub && content.ExtractedBool(types.KeyIsProfile) {
		if followers := content.ExtractedFloat(types.KeyFollowers); followers > 0 {
			metrics = append(metrics, types.Metric{Label: "Followers", Value: followers})
		}
		if repos := content.ExtractedFloat(types.KeyPublicRepos); repos > 0 {
			metrics = append(metrics, types.Metric{Label: "Repositories", Value: repos})
		}
	}

	if content.Source == types.SourceGitHub && !content.ExtractedBool(types.KeyIsProfile) {
		if stars := content.ExtractedFloat(types.KeyStars); stars > 0 {
			metrics = append(metrics, types.Metric{Label: "Stars", Value: stars})
		}
		if forks := content.ExtractedFloat(types.KeyForks); forks > 0 {
			metrics = append(metrics, types.Metric{Label: "Forks", Value: forks})
		}
	}

	if len(metrics) == 0 {
		metrics = append(metrics, types.Metric{
			Label: "Quality Score",
			Value: math.Round(content.FinalScore * 100),
			Unit:  "%",
		})
	}
	if len(metrics) > maxMetrics {
		metrics = metrics[:maxMetrics]
	}

	layout := "horizontal"
	if len(metrics) > 2 {
		layout = "grid"
	}

	return &types.MetricContent{Metrics: metrics, Layout: layout}
}

func buildComparisonContent(content types.ScoredContent) *types.ComparisonContent {
	// Known simplification: there is no true before/after pairing in this
	// pipeline, so the "before" side is a static placeholder image.
	return &types.ComparisonContent{
		Before: types.ComparisonSide{ImageURL: placeholderBefore, Label: "Before"},
		After:  types.ComparisonSide{ImageURL: mediaURL(&content), Label: "After"},
	}
}

func buildGalleryContent(content types.ScoredContent) *types.GalleryContent {
	return &types.GalleryContent{
		Items:    []types.GalleryItem{{URL: mediaURL(&content), Caption: content.Title}},
		Layout:   "grid",
		Columns:  2,
		Lightbox: true,
	}
}

func buildTimelineContent(content types.ScoredContent, now time.Time) *types.TimelineContent {
	description := content.Description
	if len(description) > previewLength {
		description = description[:previewLength]
	}
	return &types.TimelineContent{
		Entries: []types.TimelineEntry{{
			Timestamp:   now,
			Title:       content.Title,
			Description: description,
		}},
	}
}

func buildExternalLinkContent(content types.ScoredContent) *types.ExternalLinkContent {
	description := content.Description

	if content.Source == types.SourceGitHub {
		if content.ExtractedBool(types.KeyIsProfile) {
			description = githubProfileLinkDescription(&content)
		} else {
			description = githubRepoLinkDescription(&content)
		}
	}

	return &types.ExternalLinkContent{
		URL:         content.OriginalURL,
		Platform:    content.Source,
		Title:       content.Title,
		Description: description,
	}
}

func githubProfileLinkDescription(content *types.ScoredContent) string {
	var parts []string
	if followers := content.ExtractedFloat(types.KeyFollowers); followers > 0 {
		parts = append(parts, fmt.Sprintf("%d followers", int(followers)))
	}
	if repos := content.ExtractedFloat(types.KeyPublicRepos); repos > 0 {
		parts = append(parts, fmt.Sprintf("%d repositories", int(repos)))
	}
	if location := content.ExtractedString(types.KeyLocation); location != "" {
		parts = append(parts, location)
	}
	if len(parts) == 0 {
		return content.Description
	}
	return strings.Join(parts, " · ")
}

func githubRepoLinkDescription(content *types.ScoredContent) string {
	var parts []string
	if language := content.ExtractedString(types.KeyLanguage); language != "" {
		parts = append(parts, language)
	}
	if stars := content.ExtractedFloat(types.KeyStars); stars > 0 {
		parts = append(parts, fmt.Sprintf("%d stars", int(stars)))
	}
	if forks := content.ExtractedFloat(types.KeyForks); forks > 0 {
		parts = append(parts, fmt.Sprintf("%d forks", int(forks)))
	}
	if len(parts) == 0 {
		return content.Description
	}
	return strings.Join(parts, " · ")
}

// buildScrollContainerContent wraps a single media block as the container's
// sole child.
func buildScrollContainerContent(content types.ScoredContent, sectionID types.SectionID, now time.Time) *types.ScrollContainerContent {
	child := BuildBlockAt(content, types.BlockMedia, sectionID, now)
	return &types.ScrollContainerContent{
		Direction: "horizontal",
		Snap:      "center",
		Children:  []types.Block{child},
	}
}

func buildHotspotMediaContent(content types.ScoredContent) *types.HotspotMediaContent {
	// Hotspot detection lives outside this pipeline; the list starts empty.
	return &types.HotspotMediaContent{
		ImageURL: mediaURL(&content),
		Hotspots: []types.Hotspot{},
	}
}

func buildCTAContent() *types.CTAContent {
	return &types.CTAContent{
		Heading: "Contact",
		Primary: types.CTAAction{Label: "Get in Touch", Action: "open_chat"},
		Secondary: &types.CTAAction{
			Label:  "Save Card",
			Action: "save_card",
		},
	}
}
