// Package types provides type definitions for structured data used throughout the portfolio-composer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Category is one of the eight professional domains a portfolio can belong to.
// The set is closed; the string values are part of the wire contract.
type Category string

// Valid category values.
const (
	CategoryFinance       Category = "finance"
	CategoryEntertainment Category = "entertainment"
	CategoryDesign        Category = "design"
	CategoryLegal         Category = "legal"
	CategoryTech          Category = "tech"
	CategoryMarketing     Category = "marketing"
	CategoryInfluencers   Category = "influencers"
	CategoryBusiness      Category = "business"
)

// Categories lists every valid category in a fixed order.
var Categories = []Category{
	CategoryFinance,
	CategoryEntertainment,
	CategoryDesign,
	CategoryLegal,
	CategoryTech,
	CategoryMarketing,
	CategoryInfluencers,
	CategoryBusiness,
}

// Valid reports whether c is one of the eight known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFinance, CategoryEntertainment, CategoryDesign, CategoryLegal,
		CategoryTech, CategoryMarketing, CategoryInfluencers, CategoryBusiness:
		return true
	}
	return false
}

// ParseCategory converts a raw string into a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// WeightVector holds the five scoring weights for one category.
// The components of every vector sum to 1.0.
type WeightVector struct {
	Relevance   float64 `json:"relevance"`
	Quality     float64 `json:"quality"`
	Credibility float64 `json:"credibility"`
	Engagement  float64 `json:"engagement"`
	Freshness   float64 `json:"freshness"`
}

// categoryWeights maps each category to its immutable weight vector.
// Built once at startup; treated as read-only configuration.
var categoryWeights = map[Category]WeightVector{
	CategoryFinance:       {Relevance: 0.25, Quality: 0.20, Credibility: 0.30, Engagement: 0.10, Freshness: 0.15},
	CategoryEntertainment: {Relevance: 0.20, Quality: 0.20, Credibility: 0.10, Engagement: 0.35, Freshness: 0.15},
	CategoryDesign:        {Relevance: 0.25, Quality: 0.35, Credibility: 0.10, Engagement: 0.20, Freshness: 0.10},
	CategoryLegal:         {Relevance: 0.25, Quality: 0.15, Credibility: 0.40, Engagement: 0.05, Freshness: 0.15},
	CategoryTech:          {Relevance: 0.30, Quality: 0.20, Credibility: 0.25, Engagement: 0.10, Freshness: 0.15},
	CategoryMarketing:     {Relevance: 0.25, Quality: 0.20, Credibility: 0.10, Engagement: 0.30, Freshness: 0.15},
	CategoryInfluencers:   {Relevance: 0.15, Quality: 0.20, Credibility: 0.10, Engagement: 0.40, Freshness: 0.15},
	CategoryBusiness:      {Relevance: 0.25, Quality: 0.20, Credibility: 0.25, Engagement: 0.15, Freshness: 0.15},
}

// Weights returns the weight vector for the category. Unknown categories get
// the business vector, but callers are expected to validate first.
func (c Category) Weights() WeightVector {
	if w, ok := categoryWeights[c]; ok {
		return w
	}
	return categoryWeights[CategoryBusiness]
}
