// Package composing assembles scored content into the fixed portfolio document.
package composing

import "github.com/jonathan/portfolio-composer/internal/types"

// hookBlockTypes is the fixed category-specific block choice for the hook
// section when no content-type rule fires first.
var hookBlockTypes = map[types.Category]types.BlockType{
	types.CategoryFinance:       types.BlockMetric,
	types.CategoryEntertainment: types.BlockMedia,
	types.CategoryDesign:        types.BlockComparison,
	types.CategoryLegal:         types.BlockExpandableText,
	types.CategoryTech:          types.BlockMedia,
	types.CategoryMarketing:     types.BlockMetric,
	types.CategoryInfluencers:   types.BlockMedia,
	types.CategoryBusiness:      types.BlockMetric,
}

// sectionPreferredTypes declares, per section, the block types it prefers in
// order. The first entry doubles as the fallback when nothing else matches.
var sectionPreferredTypes = map[types.SectionID][]types.BlockType{
	types.SectionHook:        {types.BlockMedia, types.BlockMetric, types.BlockComparison, types.BlockExpandableText},
	types.SectionCredibility: {types.BlockMetric, types.BlockExternalLink, types.BlockExpandableText, types.BlockTimeline},
	types.SectionWork:        {types.BlockMedia, types.BlockGallery, types.BlockScrollContainer, types.BlockHotspotMedia},
	types.SectionProcess:     {types.BlockExpandableText, types.BlockTimeline},
	types.SectionAction:      {types.BlockCTA},
}

// contentTypeBlocks maps a content type to its natural block candidate.
var contentTypeBlocks = map[types.ContentType]types.BlockType{
	types.ContentTypeVideo: types.BlockMedia,
	types.ContentTypeImage: types.BlockMedia,
	types.ContentTypeCode:  types.BlockExpandableText,
}

// SelectBlockType chooses the block variant for a content item placed in a
// section. The function is total: every input yields a valid block type.
// Rules are checked in order; the first match wins.
func SelectBlockType(content types.ScoredContent, sectionID types.SectionID, category types.Category) types.BlockType {
	// Documents and raw text always render as expandable text.
	if content.Type == types.ContentTypePDF || content.Type == types.ContentTypeText {
		return types.BlockExpandableText
	}

	if content.Type == types.ContentTypeExternalLink {
		return types.BlockExternalLink
	}

	// GitHub profiles render as profile links even when typed as code.
	if content.Source == types.SourceGitHub && content.ExtractedBool(types.KeyIsProfile) {
		return types.BlockExternalLink
	}

	if sectionID == types.SectionHook {
		if bt, ok := hookBlockTypes[category]; ok {
			return bt
		}
	}

	preferred := sectionPreferredTypes[sectionID]
	if candidate, ok := contentTypeBlocks[content.Type]; ok {
		for _, bt := range preferred {
			if bt == candidate {
				return candidate
			}
		}
	}

	if len(preferred) > 0 {
		return preferred[0]
	}
	return types.BlockExpandableText
}
