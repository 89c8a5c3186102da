// Package types provides type definitions for structured data used throughout the portfolio-composer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// BlockType identifies one of the ten renderable block variants.
type BlockType string

// Valid block type values.
const (
	BlockMedia           BlockType = "media"
	BlockExpandableText  BlockType = "expandable_text"
	BlockMetric          BlockType = "metric"
	BlockComparison      BlockType = "comparison"
	BlockGallery         BlockType = "gallery"
	BlockTimeline        BlockType = "timeline"
	BlockExternalLink    BlockType = "external_link"
	BlockScrollContainer BlockType = "scroll_container"
	BlockHotspotMedia    BlockType = "hotspot_media"
	BlockCTA             BlockType = "cta"
)

// BlockTypes lists every valid block type.
var BlockTypes = []BlockType{
	BlockMedia,
	BlockExpandableText,
	BlockMetric,
	BlockComparison,
	BlockGallery,
	BlockTimeline,
	BlockExternalLink,
	BlockScrollContainer,
	BlockHotspotMedia,
	BlockCTA,
}

// Valid reports whether t is a known block type.
func (t BlockType) Valid() bool {
	switch t {
	case BlockMedia, BlockExpandableText, BlockMetric, BlockComparison,
		BlockGallery, BlockTimeline, BlockExternalLink, BlockScrollContainer,
		BlockHotspotMedia, BlockCTA:
		return true
	}
	return false
}

// BlockContent is the closed union of per-type block payloads. Each variant
// struct reports its own block type so a Block can be checked for tag/payload
// agreement.
type BlockContent interface {
	BlockType() BlockType
}

// BlockVisibility carries the renderer-facing display hints for a block.
type BlockVisibility struct {
	Initial  string `json:"initial"`  // expanded | collapsed
	Priority string `json:"priority"` // high | medium
}

// BlockStyle carries fixed styling applied uniformly by the composer.
type BlockStyle struct {
	Padding string `json:"padding"`
}

// Block is one typed renderable unit inside a section. Content is a tagged
// union keyed by BlockType.
type Block struct {
	BlockID    string          `json:"block_id"`
	BlockType  BlockType       `json:"block_type"`
	Content    BlockContent    `json:"content"`
	Visibility BlockVisibility `json:"visibility"`
	Style      BlockStyle      `json:"style"`
}

// UnmarshalJSON decodes a block, dispatching the content payload to the
// variant struct named by block_type.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw struct {
		BlockID    string          `json:"block_id"`
		BlockType  BlockType       `json:"block_type"`
		Content    json.RawMessage `json:"content"`
		Visibility BlockVisibility `json:"visibility"`
		Style      BlockStyle      `json:"style"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	content, err := decodeBlockContent(raw.BlockType, raw.Content)
	if err != nil {
		return err
	}

	b.BlockID = raw.BlockID
	b.BlockType = raw.BlockType
	b.Content = content
	b.Visibility = raw.Visibility
	b.Style = raw.Style
	return nil
}

// decodeBlockContent decodes a raw content payload into the variant struct
// for the given block type.
func decodeBlockContent(t BlockType, data json.RawMessage) (BlockContent, error) {
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}

	unmarshal := func(v BlockContent) (BlockContent, error) {
		if err := json.Unmarshal(data, v); err != nil {
			return nil, fmt.Errorf("failed to decode %s content: %w", t, err)
		}
		return v, nil
	}

	switch t {
	case BlockMedia:
		return unmarshal(&MediaContent{})
	case BlockExpandableText:
		return unmarshal(&ExpandableTextContent{})
	case BlockMetric:
		return unmarshal(&MetricContent{})
	case BlockComparison:
		return unmarshal(&ComparisonContent{})
	case BlockGallery:
		return unmarshal(&GalleryContent{})
	case BlockTimeline:
		return unmarshal(&TimelineContent{})
	case BlockExternalLink:
		return unmarshal(&ExternalLinkContent{})
	case BlockScrollContainer:
		return unmarshal(&ScrollContainerContent{})
	case BlockHotspotMedia:
		return unmarshal(&HotspotMediaContent{})
	case BlockCTA:
		return unmarshal(&CTAContent{})
	default:
		return nil, fmt.Errorf("unknown block type %q", t)
	}
}

// MediaSource is one playable/displayable source inside a media block.
type MediaSource struct {
	URL string `json:"url"`
}

// PlaybackOptions controls video playback behavior. Present only for video media.
type PlaybackOptions struct {
	Autoplay bool `json:"autoplay"`
	Loop     bool `json:"loop"`
	Muted    bool `json:"muted"`
}

// MediaContent is the payload of a media block.
type MediaContent struct {
	MediaType string           `json:"media_type"` // video | image
	Sources   []MediaSource    `json:"sources"`
	Thumbnail string           `json:"thumbnail,omitempty"`
	Playback  *PlaybackOptions `json:"playback,omitempty"`
}

// BlockType implements BlockContent.
func (MediaContent) BlockType() BlockType { return BlockMedia }

// ExpandableTextContent is the payload of an expandable_text block.
type ExpandableTextContent struct {
	Header   string   `json:"header"`
	Preview  string   `json:"preview"`
	FullText string   `json:"full_text"`
	Tags     []string `json:"tags,omitempty"`
}

// BlockType implements BlockContent.
func (ExpandableTextContent) BlockType() BlockType { return BlockExpandableText }

// Metric is one labeled numeric value inside a metric block.
type Metric struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// MetricContent is the payload of a metric block.
type MetricContent struct {
	Metrics []Metric `json:"metrics"`
	Layout  string   `json:"layout"` // horizontal | grid
}

// BlockType implements BlockContent.
func (MetricContent) BlockType() BlockType { return BlockMetric }

// ComparisonSide is one half of a comparison block.
type ComparisonSide struct {
	ImageURL string `json:"image_url"`
	Label    string `json:"label"`
}

// ComparisonContent is the payload of a comparison block.
type ComparisonContent struct {
	Before ComparisonSide `json:"before"`
	After  ComparisonSide `json:"after"`
}

// BlockType implements BlockContent.
func (ComparisonContent) BlockType() BlockType { return BlockComparison }

// GalleryItem is one entry in a gallery block.
type GalleryItem struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// GalleryContent is the payload of a gallery block.
type GalleryContent struct {
	Items    []GalleryItem `json:"items"`
	Layout   string        `json:"layout"` // grid
	Columns  int           `json:"columns"`
	Lightbox bool          `json:"lightbox"`
}

// BlockType implements BlockContent.
func (GalleryContent) BlockType() BlockType { return BlockGallery }

// TimelineEntry is one dated entry in a timeline block.
type TimelineEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
}

// TimelineContent is the payload of a timeline block.
type TimelineContent struct {
	Entries []TimelineEntry `json:"entries"`
}

// BlockType implements BlockContent.
func (TimelineContent) BlockType() BlockType { return BlockTimeline }

// ExternalLinkContent is the payload of an external_link block.
type ExternalLinkContent struct {
	URL         string `json:"url"`
	Platform    string `json:"platform"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// BlockType implements BlockContent.
func (ExternalLinkContent) BlockType() BlockType { return BlockExternalLink }

// ScrollContainerContent is the payload of a scroll_container block. Children
// are full blocks rendered inside the horizontal scroller.
type ScrollContainerContent struct {
	Direction string  `json:"direction"` // horizontal
	Snap      string  `json:"snap"`      // center
	Children  []Block `json:"children"`
}

// BlockType implements BlockContent.
func (ScrollContainerContent) BlockType() BlockType { return BlockScrollContainer }

// Hotspot is one tappable region on a hotspot media block.
type Hotspot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// HotspotMediaContent is the payload of a hotspot_media block.
type HotspotMediaContent struct {
	ImageURL string    `json:"image_url"`
	Hotspots []Hotspot `json:"hotspots"`
}

// BlockType implements BlockContent.
func (HotspotMediaContent) BlockType() BlockType { return BlockHotspotMedia }

// CTAAction is one call-to-action button.
type CTAAction struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// CTAContent is the payload of a cta block.
type CTAContent struct {
	Heading   string     `json:"heading"`
	Primary   CTAAction  `json:"primary"`
	Secondary *CTAAction `json:"secondary,omitempty"`
}

// BlockType implements BlockContent.
func (CTAContent) BlockType() BlockType { return BlockCTA }
