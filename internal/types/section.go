// Package types provides type definitions for structured data used throughout the portfolio-composer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// SectionID identifies one of the five fixed portfolio sections.
type SectionID string

// Valid section identifiers, in document order.
const (
	SectionHook        SectionID = "hook"
	SectionCredibility SectionID = "credibility"
	SectionWork        SectionID = "work"
	SectionProcess     SectionID = "process"
	SectionAction      SectionID = "action"
)

// SectionIDs lists every section in its fixed document order.
var SectionIDs = []SectionID{
	SectionHook,
	SectionCredibility,
	SectionWork,
	SectionProcess,
	SectionAction,
}

// sectionOrder maps each section to its position in the document skeleton.
var sectionOrder = map[SectionID]int{
	SectionHook:        1,
	SectionCredibility: 2,
	SectionWork:        3,
	SectionProcess:     4,
	SectionAction:      5,
}

// Valid reports whether s is one of the five known sections.
func (s SectionID) Valid() bool {
	_, ok := sectionOrder[s]
	return ok
}

// Order returns the section's fixed position (1..5), or 0 for unknown ids.
func (s SectionID) Order() int {
	return sectionOrder[s]
}

// ParseSectionID converts a raw string into a SectionID, rejecting unknown values.
func ParseSectionID(raw string) (SectionID, error) {
	s := SectionID(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown section id %q", raw)
	}
	return s, nil
}

// SectionLayout controls how a section is framed by the renderer.
type SectionLayout string

// Valid section layouts.
const (
	LayoutFull      SectionLayout = "full"
	LayoutContained SectionLayout = "contained"
	LayoutSplit     SectionLayout = "split"
)

// SectionVisibility carries the renderer-facing display hints for a section.
type SectionVisibility struct {
	Initial            string `json:"initial"`
	MinContentRequired int    `json:"min_content_required"`
}

// Section is one zone of the portfolio skeleton with its rendered blocks.
type Section struct {
	SectionID  SectionID         `json:"section_id"`
	Order      int               `json:"order"`
	Layout     SectionLayout     `json:"layout"`
	Visibility SectionVisibility `json:"visibility"`
	Blocks     []Block           `json:"blocks"`
}
