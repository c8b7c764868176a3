package navigation

import (
	"slices"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/hierarchy"
	"github.com/goliatone/go-sitenav/internal/pages"
)

// FallbackSectionTitle names the synthesized section used when a page has no
// layout configuration yet.
const FallbackSectionTitle = "Contents"

// SectionColumns is the fixed width of the section grid.
const SectionColumns = 3

// Section is a resolved, render-ready group of a page's children.
type Section struct {
	Title  string
	Column int
	Order  int
	Pages  []*hierarchy.PageNode
}

// OrganizeSections buckets a page's children into the column grid described
// by its section configuration.
//
// Member ids that no longer resolve against the children are dropped
// silently, so a section shrinks when a child is deleted instead of erroring.
// A page referenced by more than one section is kept only by the first
// section in display order. When no configuration exists, every child lands
// in a single synthesized section in column 1 so the children stay reachable
// before an administrator has arranged them.
func OrganizeSections(configs []pages.SectionConfig, children []*hierarchy.PageNode) map[int][]Section {
	result := make(map[int][]Section)

	if len(configs) == 0 {
		if len(children) == 0 {
			return result
		}
		result[1] = []Section{{
			Title:  FallbackSectionTitle,
			Column: 1,
			Order:  0,
			Pages:  slices.Clone(children),
		}}
		return result
	}

	byID := make(map[uuid.UUID]*hierarchy.PageNode, len(children))
	for _, child := range children {
		byID[child.Page.ID] = child
	}

	ordered := slices.Clone(configs)
	slices.SortStableFunc(ordered, func(a, b pages.SectionConfig) int {
		if a.Column != b.Column {
			return a.Column - b.Column
		}
		return a.Order - b.Order
	})

	used := make(map[uuid.UUID]bool, len(children))
	for _, config := range ordered {
		section := Section{
			Title:  config.Title,
			Column: config.Column,
			Order:  config.Order,
		}
		for _, id := range config.PageIDs {
			node, ok := byID[id]
			if !ok || used[id] {
				continue
			}
			used[id] = true
			section.Pages = append(section.Pages, node)
		}
		result[config.Column] = append(result[config.Column], section)
	}
	return result
}
