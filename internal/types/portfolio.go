// Package types provides type definitions for structured data used throughout the portfolio-composer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// PortfolioVersion is the wire contract version stamped on every document.
const PortfolioVersion = "v1"

// PortfolioMeta carries document-level display metadata.
type PortfolioMeta struct {
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Language  string    `json:"language"`
	Theme     string    `json:"theme"`
}

// NavAnchor maps a section to its in-document anchor.
type NavAnchor struct {
	SectionID SectionID `json:"section_id"`
	Anchor    string    `json:"anchor"`
}

// QuickNavItem is one entry of the fixed quick-navigation bar.
type QuickNavItem struct {
	SectionID SectionID `json:"section_id"`
	Label     string    `json:"label"`
	Icon      string    `json:"icon"`
}

// Navigation carries the renderer-facing navigation metadata for a portfolio.
type Navigation struct {
	Anchors          []NavAnchor    `json:"anchors"`
	DeepLinkTemplate string         `json:"deep_link_template"`
	QuickNav         []QuickNavItem `json:"quick_nav"`
}

// Analytics names the events client renderers should report for this document.
type Analytics struct {
	TrackEvents []string `json:"track_events"`
}

// Portfolio is the top-level generated document for one user and category.
// Field names, enum values, and nesting are a locked wire contract consumed
// by native mobile renderers.
type Portfolio struct {
	PortfolioID string        `json:"portfolio_id"`
	UserID      string        `json:"user_id"`
	Category    Category      `json:"category"`
	Version     string        `json:"version"`
	Meta        PortfolioMeta `json:"meta"`
	Sections    []Section     `json:"sections"`
	Navigation  Navigation    `json:"navigation"`
	Analytics   Analytics     `json:"analytics"`
}
