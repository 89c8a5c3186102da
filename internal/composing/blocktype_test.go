package composing

import (
	"testing"

	"github.com/jonathan/portfolio-composer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSelectBlockType_PDFAlwaysExpandableText(t *testing.T) {
	pdf := scoredItem("doc", types.ContentTypePDF, types.SourceUpload, 0.8)

	for _, sectionID := range []types.SectionID{
		types.SectionHook,
		types.SectionCredibility,
		types.SectionWork,
		types.SectionProcess,
	} {
		for _, category := range types.Categories {
			got := SelectBlockType(pdf, sectionID, category)
			assert.Equalf(t, types.BlockExpandableText, got, "section %s, category %s", sectionID, category)
		}
	}
}

func TestSelectBlockType_TextAlwaysExpandableText(t *testing.T) {
	text := scoredItem("note", types.ContentTypeText, "", 0.3)

	got := SelectBlockType(text, types.SectionHook, types.CategoryDesign)
	assert.Equal(t, types.BlockExpandableText, got)
}

func TestSelectBlockType_ExternalLinkAlwaysLink(t *testing.T) {
	link := scoredItem("site", types.ContentTypeExternalLink, "behance", 0.5)

	got := SelectBlockType(link, types.SectionWork, types.CategoryDesign)
	assert.Equal(t, types.BlockExternalLink, got)
}

func TestSelectBlockType_GitHubProfileRendersAsLink(t *testing.T) {
	profile := scoredItem("gh", types.ContentTypeCode, types.SourceGitHub, 0.6)
	profile.ExtractedData = map[string]any{types.KeyIsProfile: true}

	got := SelectBlockType(profile, types.SectionCredibility, types.CategoryTech)
	assert.Equal(t, types.BlockExternalLink, got)
}

func TestSelectBlockType_HookFollowsCategoryTable(t *testing.T) {
	video := scoredItem("v", types.ContentTypeVideo, types.SourceYouTube, 0.9)

	tests := map[types.Category]types.BlockType{
		types.CategoryFinance:       types.BlockMetric,
		types.CategoryEntertainment: types.BlockMedia,
		types.CategoryDesign:        types.BlockComparison,
		types.CategoryLegal:         types.BlockExpandableText,
		types.CategoryTech:          types.BlockMedia,
		types.CategoryMarketing:     types.BlockMetric,
		types.CategoryInfluencers:   types.BlockMedia,
		types.CategoryBusiness:      types.BlockMetric,
	}

	for category, want := range tests {
		got := SelectBlockType(video, types.SectionHook, category)
		assert.Equalf(t, want, got, "category %s", category)
	}
}

func TestSelectBlockType_ContentTypeMatchWithinPreferred(t *testing.T) {
	// Video in work: media is both the content-type candidate and a
	// preferred type for the section.
	video := scoredItem("v", types.ContentTypeVideo, "", 0.5)
	assert.Equal(t, types.BlockMedia, SelectBlockType(video, types.SectionWork, types.CategoryTech))

	// Code in credibility: expandable_text is the candidate and appears in
	// the preferred list.
	repo := scoredItem("r", types.ContentTypeCode, types.SourceGitHub, 0.5)
	assert.Equal(t, types.BlockExpandableText, SelectBlockType(repo, types.SectionCredibility, types.CategoryTech))
}

func TestSelectBlockType_FallsBackToFirstPreferred(t *testing.T) {
	// Code in work: candidate expandable_text is not in the work list, so
	// the section's first preference wins.
	repo := scoredItem("r", types.ContentTypeCode, types.SourceGitHub, 0.5)
	assert.Equal(t, types.BlockMedia, SelectBlockType(repo, types.SectionWork, types.CategoryTech))
}

func TestSelectBlockType_ActionIsAlwaysCTA(t *testing.T) {
	video := scoredItem("v", types.ContentTypeVideo, "", 0.5)
	assert.Equal(t, types.BlockCTA, SelectBlockType(video, types.SectionAction, types.CategoryBusiness))
}

func TestSelectBlockType_IsTotal(t *testing.T) {
	sections := []types.SectionID{
		types.SectionHook,
		types.SectionCredibility,
		types.SectionWork,
		types.SectionProcess,
		types.SectionAction,
	}
	contentTypes := []types.ContentType{
		types.ContentTypeVideo,
		types.ContentTypeImage,
		types.ContentTypePDF,
		types.ContentTypeText,
		types.ContentTypeCode,
		types.ContentTypeExternalLink,
	}

	for _, sectionID := range sections {
		for _, contentType := range contentTypes {
			for _, category := range types.Categories {
				item := scoredItem("x", contentType, "", 0.5)
				got := SelectBlockType(item, sectionID, category)
				assert.Truef(t, got.Valid(), "section %s, type %s, category %s yielded %q",
					sectionID, contentType, category, got)
			}
		}
	}
}
