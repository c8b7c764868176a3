package navigation_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/hierarchy"
	"github.com/goliatone/go-sitenav/internal/navigation"
	"github.com/goliatone/go-sitenav/internal/pages"
)

func childNode(slug string) *hierarchy.PageNode {
	return &hierarchy.PageNode{Page: &pages.Page{
		ID:    uuid.New(),
		Slug:  slug,
		Title: slug,
	}}
}

func TestOrganizeSectionsDropsStaleIDs(t *testing.T) {
	p1 := childNode("p1")
	deleted := uuid.New()

	result := navigation.OrganizeSections([]pages.SectionConfig{{
		Title:   "Tools",
		Column:  2,
		Order:   1,
		PageIDs: []uuid.UUID{p1.Page.ID, deleted},
	}}, []*hierarchy.PageNode{p1})

	sections, ok := result[2]
	if !ok || len(sections) != 1 {
		t.Fatalf("expected one section in column 2, got %v", result)
	}
	section := sections[0]
	if section.Title != "Tools" || section.Column != 2 || section.Order != 1 {
		t.Fatalf("section metadata lost: %+v", section)
	}
	if len(section.Pages) != 1 || section.Pages[0].Page.ID != p1.Page.ID {
		t.Fatalf("stale id must be dropped silently, got %d pages", len(section.Pages))
	}
}

func TestOrganizeSectionsFallback(t *testing.T) {
	a := childNode("a")
	b := childNode("b")

	result := navigation.OrganizeSections(nil, []*hierarchy.PageNode{a, b})
	sections, ok := result[1]
	if !ok || len(sections) != 1 {
		t.Fatalf("expected single fallback section in column 1, got %v", result)
	}
	section := sections[0]
	if section.Title != navigation.FallbackSectionTitle {
		t.Fatalf("unexpected fallback title %q", section.Title)
	}
	if len(section.Pages) != 2 || section.Pages[0] != a || section.Pages[1] != b {
		t.Fatal("fallback must contain every child in hierarchy order")
	}
}

func TestOrganizeSectionsEmptyChildren(t *testing.T) {
	result := navigation.OrganizeSections(nil, nil)
	if len(result) != 0 {
		t.Fatalf("expected no sections, got %v", result)
	}
}

func TestOrganizeSectionsNoDuplicatesAcrossSections(t *testing.T) {
	a := childNode("a")
	b := childNode("b")

	result := navigation.OrganizeSections([]pages.SectionConfig{
		{Title: "First", Column: 1, Order: 1, PageIDs: []uuid.UUID{a.Page.ID, b.Page.ID}},
		{Title: "Second", Column: 2, Order: 1, PageIDs: []uuid.UUID{b.Page.ID}},
	}, []*hierarchy.PageNode{a, b})

	seen := map[uuid.UUID]int{}
	for _, sections := range result {
		for _, section := range sections {
			for _, page := range section.Pages {
				seen[page.Page.ID]++
			}
		}
	}
	for id, count := range seen {
		if count > 1 {
			t.Fatalf("page %s appears %d times across sections", id, count)
		}
	}
}

func TestOrganizeSectionsSortsWithinColumn(t *testing.T) {
	a := childNode("a")
	b := childNode("b")

	result := navigation.OrganizeSections([]pages.SectionConfig{
		{Title: "Later", Column: 1, Order: 2, PageIDs: []uuid.UUID{b.Page.ID}},
		{Title: "Earlier", Column: 1, Order: 1, PageIDs: []uuid.UUID{a.Page.ID}},
	}, []*hierarchy.PageNode{a, b})

	sections := result[1]
	if len(sections) != 2 {
		t.Fatalf("expected two sections in column 1, got %d", len(sections))
	}
	if sections[0].Title != "Earlier" || sections[1].Title != "Later" {
		t.Fatalf("sections out of order: %q, %q", sections[0].Title, sections[1].Title)
	}
}

func TestOrganizeSectionsPreservesConfiguredMemberOrder(t *testing.T) {
	a := childNode("a")
	b := childNode("b")
	c := childNode("c")

	result := navigation.OrganizeSections([]pages.SectionConfig{
		{Title: "Mixed", Column: 3, Order: 1, PageIDs: []uuid.UUID{c.Page.ID, a.Page.ID, b.Page.ID}},
	}, []*hierarchy.PageNode{a, b, c})

	section := result[3][0]
	want := []*hierarchy.PageNode{c, a, b}
	if len(section.Pages) != len(want) {
		t.Fatalf("expected %d pages, got %d", len(want), len(section.Pages))
	}
	for i := range want {
		if section.Pages[i] != want[i] {
			t.Fatalf("member order not preserved at %d", i)
		}
	}
}
