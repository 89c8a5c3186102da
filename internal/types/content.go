// Package types provides type definitions for structured data used throughout the portfolio-composer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// ContentType is the media kind of a normalized content record.
type ContentType string

// Valid content type values.
const (
	ContentTypeVideo        ContentType = "video"
	ContentTypeImage        ContentType = "image"
	ContentTypePDF          ContentType = "pdf"
	ContentTypeText         ContentType = "text"
	ContentTypeCode         ContentType = "code"
	ContentTypeExternalLink ContentType = "external_link"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeVideo, ContentTypeImage, ContentTypePDF,
		ContentTypeText, ContentTypeCode, ContentTypeExternalLink:
		return true
	}
	return false
}

// ParseContentType converts a raw string into a ContentType, rejecting unknown values.
func ParseContentType(s string) (ContentType, error) {
	t := ContentType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown content type %q", s)
	}
	return t, nil
}

// Well-known source platform tags. The source field is an open tag produced
// by ingestion, but these values carry special scoring and filter behavior.
const (
	SourceYouTube   = "youtube"
	SourceGitHub    = "github"
	SourceInstagram = "instagram"
	SourceTikTok    = "tiktok"
	SourceLinkedIn  = "linkedin"
	SourceTwitter   = "twitter"
	SourceUpload    = "upload"
)

// Extracted-data field keys produced by the ingestion collaborators.
// Missing keys always degrade to zero values, never errors.
const (
	KeyText            = "text"
	KeyTextType        = "text_type"
	KeyThumbnailURL    = "thumbnail_url"
	KeyEmbedURL        = "embed_url"
	KeyWidth           = "width"
	KeyHeight          = "height"
	KeyDuration        = "duration"
	KeyPageCount       = "page_count"
	KeyDocumentType    = "document_type"
	KeyReadmePreview   = "readme_preview"
	KeyViewCount       = "view_count"
	KeyLikeCount       = "like_count"
	KeyStars           = "stars"
	KeyForks           = "forks"
	KeyLanguage        = "language"
	KeyIsProfile       = "is_profile"
	KeyFollowers       = "followers"
	KeyPublicRepos     = "public_repos"
	KeyBio             = "bio"
	KeyLocation        = "location"
	KeyCompany         = "company"
	KeyTopRepositories = "top_repositories"
	KeyTags            = "tags"
	KeyTopics          = "topics"
	KeySkills          = "skills"
)

// NormalizedContent is one content record produced by the ingestion
// collaborators. It is immutable once created; the composer never writes to it.
type NormalizedContent struct {
	ContentID     string         `json:"content_id" validate:"required"`
	Type          ContentType    `json:"type" validate:"required"`
	Source        string         `json:"source,omitempty"`
	OriginalURL   string         `json:"original_url,omitempty"`
	FilePath      string         `json:"file_path,omitempty"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	ExtractedData map[string]any `json:"extracted_data,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ExtractedString returns the named extracted field as a string.
// Missing or mistyped fields yield "".
func (c *NormalizedContent) ExtractedString(key string) string {
	if c.ExtractedData == nil {
		return ""
	}
	if v, ok := c.ExtractedData[key].(string); ok {
		return v
	}
	return ""
}

// ExtractedFloat returns the named extracted field as a float64.
// JSON numbers decode as float64, but ingestion code may also hand us native
// ints. Missing or mistyped fields yield 0.
func (c *NormalizedContent) ExtractedFloat(key string) float64 {
	if c.ExtractedData == nil {
		return 0
	}
	switch v := c.ExtractedData[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// ExtractedBool returns the named extracted field as a bool.
// Missing or mistyped fields yield false.
func (c *NormalizedContent) ExtractedBool(key string) bool {
	if c.ExtractedData == nil {
		return false
	}
	if v, ok := c.ExtractedData[key].(bool); ok {
		return v
	}
	return false
}

// ExtractedStrings returns the named extracted field as a string slice,
// tolerating both []string and the []any produced by JSON decoding.
func (c *NormalizedContent) ExtractedStrings(key string) []string {
	if c.ExtractedData == nil {
		return nil
	}
	switch v := c.ExtractedData[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// ContentScores holds the five sub-scores for one content item.
// Each component lies in [0,1].
type ContentScores struct {
	Relevance   float64 `json:"relevance"`
	Quality     float64 `json:"quality"`
	Credibility float64 `json:"credibility"`
	Engagement  float64 `json:"engagement"`
	Freshness   float64 `json:"freshness"`
}

// ScoredContent is a normalized content record annotated with its sub-scores
// and weighted final score (rounded to two decimals, in [0,1]).
type ScoredContent struct {
	NormalizedContent
	Scores     ContentScores `json:"scores"`
	FinalScore float64       `json:"final_score"`
}
