// Package composing assembles scored content into the fixed portfolio document.
package composing

import (
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/portfolio-composer/internal/types"
)

// minContentStrict is the hard minimum ComposeStrict enforces.
const minContentStrict = 1

// ComposeOptions carries the caller-supplied parameters for one composition.
type ComposeOptions struct {
	UserID   string         `json:"user_id" validate:"required"`
	Category types.Category `json:"category" validate:"required"`
	Title    string         `json:"title" validate:"required"`
	Subtitle string         `json:"subtitle,omitempty"`
}

// Validate checks the options with struct-tag validation and the closed
// category set.
func (o *ComposeOptions) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return &InvalidOptionsError{Message: "missing or malformed fields", Cause: err}
	}
	if !o.Category.Valid() {
		return &InvalidCategoryError{Category: string(o.Category)}
	}
	return nil
}

// Compose assembles a portfolio document from a final-score-descending
// scored content list. Zero content still yields a structurally valid
// document: empty required sections, no process section, and one CTA block.
// Callers wanting a hard minimum should use ComposeStrict.
func Compose(scored []types.ScoredContent, opts ComposeOptions) (*types.Portfolio, error) {
	return ComposeAt(scored, opts, time.Now())
}

// ComposeStrict is Compose with a minimum-content guard: it rejects an empty
// input list instead of producing a skeleton document.
func ComposeStrict(scored []types.ScoredContent, opts ComposeOptions) (*types.Portfolio, error) {
	if len(scored) < minContentStrict {
		return nil, &InsufficientContentError{Provided: len(scored), Minimum: minContentStrict}
	}
	return Compose(scored, opts)
}

// ComposeAt is Compose with an explicit timestamp for document metadata and
// time-stamped block payloads. Identical inputs and timestamp produce
// identical output apart from freshly generated identifiers.
func ComposeAt(scored []types.ScoredContent, opts ComposeOptions, now time.Time) (*types.Portfolio, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	assignments := AssignSections(scored)

	sections := make([]types.Section, 0, len(contentSections)+1)
	for _, sectionID := range contentSections {
		cfg := sectionConfigs[sectionID]
		assigned := assignments[sectionID]

		// Optional sections that stayed empty are dropped entirely;
		// required sections are always emitted.
		if len(assigned) == 0 && !cfg.Required {
			continue
		}

		blocks := make([]types.Block, 0, len(assigned))
		for _, item := range assigned {
			blockType := SelectBlockType(item, sectionID, opts.Category)
			blocks = append(blocks, BuildBlockAt(item, blockType, sectionID, now))
		}

		layout := types.LayoutContained
		if sectionID == types.SectionHook {
			layout = types.LayoutFull
		}

		sections = append(sections, types.Section{
			SectionID: sectionID,
			Order:     cfg.Order,
			Layout:    layout,
			Visibility: types.SectionVisibility{
				Initial:            "visible",
				MinContentRequired: cfg.MinBlocks,
			},
			Blocks: blocks,
		})
	}

	sections = append(sections, buildActionSection(now))

	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	return &types.Portfolio{
		PortfolioID: uuid.NewString(),
		UserID:      opts.UserID,
		Category:    opts.Category,
		Version:     types.PortfolioVersion,
		Meta: types.PortfolioMeta{
			Title:     opts.Title,
			Subtitle:  opts.Subtitle,
			CreatedAt: now,
			UpdatedAt: now,
			Language:  "en",
			Theme:     "default",
		},
		Sections:   sections,
		Navigation: buildNavigation(sections),
		Analytics:  buildAnalytics(),
	}, nil
}

// buildActionSection synthesizes the always-present action section with its
// single CTA block. The CTA builder ignores its content argument.
func buildActionSection(now time.Time) types.Section {
	cta := BuildBlockAt(types.ScoredContent{}, types.BlockCTA, types.SectionAction, now)

	return types.Section{
		SectionID: types.SectionAction,
		Order:     types.SectionAction.Order(),
		Layout:    types.LayoutContained,
		Visibility: types.SectionVisibility{
			Initial:            "visible",
			MinContentRequired: 1,
		},
		Blocks: []types.Block{cta},
	}
}
