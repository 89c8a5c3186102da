// Package composing assembles scored content into the fixed portfolio document.
package composing

import "github.com/jonathan/portfolio-composer/internal/types"

// deepLinkTemplate is the fixed deep-link pattern handed to client renderers.
// Renderers substitute both placeholders at tap time.
const deepLinkTemplate = "folio://portfolio/{portfolio_id}/section/{section_id}"

// trackEvents is the fixed analytics event list every document carries.
var trackEvents = []string{
	"portfolio_view",
	"section_view",
	"block_view",
	"block_expand",
	"cta_click",
	"external_link_click",
}

// quickNavItems is the fixed label/icon lookup for the quick-navigation bar.
var quickNavItems = map[types.SectionID]types.QuickNavItem{
	types.SectionHook:        {SectionID: types.SectionHook, Label: "Intro", Icon: "spark"},
	types.SectionCredibility: {SectionID: types.SectionCredibility, Label: "Proof", Icon: "shield"},
	types.SectionWork:        {SectionID: types.SectionWork, Label: "Work", Icon: "grid"},
	types.SectionProcess:     {SectionID: types.SectionProcess, Label: "Process", Icon: "route"},
	types.SectionAction:      {SectionID: types.SectionAction, Label: "Contact", Icon: "mail"},
}

// buildNavigation derives the navigation metadata from the emitted sections.
// Anchors and quick-nav entries exist only for sections actually present.
func buildNavigation(sections []types.Section) types.Navigation {
	anchors := make([]types.NavAnchor, 0, len(sections))
	quickNav := make([]types.QuickNavItem, 0, len(sections))

	for _, section := range sections {
		anchors = append(anchors, types.NavAnchor{
			SectionID: section.SectionID,
			Anchor:    "#" + string(section.SectionID),
		})
		if item, ok := quickNavItems[section.SectionID]; ok {
			quickNav = append(quickNav, item)
		}
	}

	return types.Navigation{
		Anchors:          anchors,
		DeepLinkTemplate: deepLinkTemplate,
		QuickNav:         quickNav,
	}
}

// buildAnalytics returns the fixed analytics metadata.
func buildAnalytics() types.Analytics {
	return types.Analytics{TrackEvents: trackEvents}
}
