// Package scoring computes deterministic multi-criteria scores for normalized content.
package scoring

import "github.com/jonathan/portfolio-composer/internal/types"

// categoryKeywords maps each category to its fixed relevance keyword list.
// Matching is case-insensitive substring matching against the item's title,
// description, and extracted text. Built once; treated as read-only.
var categoryKeywords = map[types.Category][]string{
	types.CategoryFinance: {
		"finance", "investment", "portfolio", "trading", "accounting",
		"budget", "valuation", "equity", "audit", "tax", "wealth", "banking",
	},
	types.CategoryEntertainment: {
		"music", "film", "video", "performance", "show", "studio",
		"production", "actor", "stream", "concert", "podcast", "festival",
	},
	types.CategoryDesign: {
		"design", "ui", "ux", "branding", "typography", "illustration",
		"prototype", "figma", "visual", "logo", "layout", "identity",
	},
	types.CategoryLegal: {
		"law", "legal", "contract", "litigation", "compliance", "counsel",
		"attorney", "regulation", "dispute", "clause", "court", "advisory",
	},
	types.CategoryTech: {
		"software", "engineering", "api", "backend", "frontend", "cloud",
		"open source", "database", "mobile", "devops", "architecture", "code",
	},
	types.CategoryMarketing: {
		"marketing", "campaign", "brand", "seo", "conversion", "audience",
		"growth", "funnel", "advertising", "content strategy", "analytics", "launch",
	},
	types.CategoryInfluencers: {
		"followers", "creator", "collab", "sponsored", "viral", "engagement",
		"audience", "reels", "subscribers", "community", "lifestyle", "vlog",
	},
	types.CategoryBusiness: {
		"business", "strategy", "startup", "revenue", "operations", "consulting",
		"leadership", "management", "partnership", "sales", "growth", "founder",
	},
}

// KeywordsFor returns the fixed keyword list for a category.
func KeywordsFor(category types.Category) []string {
	return categoryKeywords[category]
}
