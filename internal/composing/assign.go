// Package composing assembles scored content into the fixed portfolio document.
package composing

import "github.com/jonathan/portfolio-composer/internal/types"

// sectionConfig is the static allocation policy for one content-bearing
// section. The action section never takes scored content and has no config.
type sectionConfig struct {
	Order     int
	Required  bool
	MinBlocks int
	MaxBlocks int
	Filter    func(types.ScoredContent) bool
}

// contentSections lists the content-bearing sections in fill order.
var contentSections = []types.SectionID{
	types.SectionHook,
	types.SectionCredibility,
	types.SectionWork,
	types.SectionProcess,
}

// sectionConfigs is the fixed per-section allocation policy.
var sectionConfigs = map[types.SectionID]sectionConfig{
	types.SectionHook:        {Order: 1, Required: true, MinBlocks: 1, MaxBlocks: 2, Filter: hookFilter},
	types.SectionCredibility: {Order: 2, Required: true, MinBlocks: 1, MaxBlocks: 3, Filter: credibilityFilter},
	types.SectionWork:        {Order: 3, Required: true, MinBlocks: 1, MaxBlocks: 6, Filter: workFilter},
	types.SectionProcess:     {Order: 4, Required: false, MinBlocks: 0, MaxBlocks: 2, Filter: processFilter},
}

// socialProfilePlatforms are sources whose external links count as profile
// links (credibility) rather than work-showcase links.
var socialProfilePlatforms = map[string]bool{
	types.SourceGitHub:    true,
	types.SourceLinkedIn:  true,
	types.SourceInstagram: true,
	types.SourceTwitter:   true,
	types.SourceTikTok:    true,
}

// hookFilter admits attention-grabbing content: video, anything from YouTube,
// intro/bio text, or any sufficiently strong item.
func hookFilter(c types.ScoredContent) bool {
	if c.Type == types.ContentTypeVideo || c.Source == types.SourceYouTube {
		return true
	}
	if c.Type == types.ContentTypeText {
		switch c.ExtractedString(types.KeyTextType) {
		case "intro", "bio":
			return true
		}
	}
	return c.FinalScore > 0.6
}

// credibilityFilter admits trust-building content: documents, social profile
// links, GitHub-sourced items, or items with a strong credibility sub-score.
func credibilityFilter(c types.ScoredContent) bool {
	if c.Type == types.ContentTypePDF {
		return true
	}
	if c.Type == types.ContentTypeExternalLink && socialProfilePlatforms[c.Source] {
		return true
	}
	if c.Source == types.SourceGitHub {
		return true
	}
	return c.Scores.Credibility > 0.5
}

// workFilter admits showcase content. Text and PDF are excluded outright;
// work-showcase links (non social-profile) are admitted; everything else
// needs a decent quality sub-score.
func workFilter(c types.ScoredContent) bool {
	switch c.Type {
	case types.ContentTypeText, types.ContentTypePDF:
		return false
	case types.ContentTypeImage, types.ContentTypeVideo, types.ContentTypeCode:
		return true
	case types.ContentTypeExternalLink:
		return !socialProfilePlatforms[c.Source]
	}
	return c.Scores.Quality > 0.4
}

// processFilter admits methodology content only: about/description/general
// text or non-resume documents. There is no score fallback.
func processFilter(c types.ScoredContent) bool {
	if c.Type == types.ContentTypeText {
		switch c.ExtractedString(types.KeyTextType) {
		case "about", "description", "general":
			return true
		}
		return false
	}
	if c.Type == types.ContentTypePDF {
		return c.ExtractedString(types.KeyDocumentType) != "resume"
	}
	return false
}

// AssignSections partitions a final-score-descending content list into the
// four content-bearing sections. Two passes: a greedy filtered fill in fixed
// section order, then a backfill that tops required sections up to their
// minimum from the leftover pool, ignoring filters. Each call allocates its
// own used set, so concurrent compositions never share state.
func AssignSections(scored []types.ScoredContent) map[types.SectionID][]types.ScoredContent {
	assignments := make(map[types.SectionID][]types.ScoredContent, len(contentSections))
	used := make(map[string]bool, len(scored))

	// Pass 1: greedy fill, preserving score order within each section.
	for _, sectionID := range contentSections {
		cfg := sectionConfigs[sectionID]
		selected := make([]types.ScoredContent, 0, cfg.MaxBlocks)

		for _, item := range scored {
			if len(selected) >= cfg.MaxBlocks {
				break
			}
			if used[item.ContentID] || !cfg.Filter(item) {
				continue
			}
			selected = append(selected, item)
			used[item.ContentID] = true
		}

		assignments[sectionID] = selected
	}

	// Pass 2: backfill required sections below their minimum from whatever
	// remains, filter ignored.
	for _, sectionID := range contentSections {
		cfg := sectionConfigs[sectionID]
		if !cfg.Required {
			continue
		}

		for _, item := range scored {
			if len(assignments[sectionID]) >= cfg.MinBlocks {
				break
			}
			if used[item.ContentID] {
				continue
			}
			assignments[sectionID] = append(assignments[sectionID], item)
			used[item.ContentID] = true
		}
	}

	return assignments
}
