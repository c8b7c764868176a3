package pages

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitenav/internal/countries"
)

// SyntheticRootSlug is the reserved slug flagging a domain's hidden root page.
// The root is a regular row in storage; the resolution engine treats the slug
// as structurally distinct and never emits it into a URL or breadcrumb.
const SyntheticRootSlug = "__root__"

// ContentType describes how a page's body is authored and rendered.
type ContentType string

const (
	ContentNarrative       ContentType = "narrative"
	ContentSectionBased    ContentType = "section_based"
	ContentSubcategoryList ContentType = "subcategory_list"
	ContentTable           ContentType = "table"
	ContentRichText        ContentType = "rich_text"
	ContentMixed           ContentType = "mixed_content"
)

// ParseContentType validates and canonicalizes a raw content type value.
func ParseContentType(value string) (ContentType, error) {
	switch ContentType(strings.ToLower(strings.TrimSpace(value))) {
	case ContentNarrative:
		return ContentNarrative, nil
	case ContentSectionBased:
		return ContentSectionBased, nil
	case ContentSubcategoryList:
		return ContentSubcategoryList, nil
	case ContentTable:
		return ContentTable, nil
	case ContentRichText:
		return ContentRichText, nil
	case ContentMixed:
		return ContentMixed, nil
	default:
		return "", ErrContentTypeInvalid
	}
}

// SectionConfig assigns a named, ordered subset of a page's direct children to
// one column of the 3-column grid. It is a closed structure validated on
// write; the organizer treats stale page references as sparse lookups.
type SectionConfig struct {
	Title   string      `json:"title"`
	Column  int         `json:"column"`
	Order   int         `json:"order"`
	PageIDs []uuid.UUID `json:"page_ids"`
}

// Validate enforces the structural rules for a section configuration.
func (s SectionConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&s.Column, validation.Required, validation.Min(1), validation.Max(3)),
		validation.Field(&s.Order, validation.Min(0)),
		validation.Field(&s.PageIDs, validation.By(uniquePageIDs)),
	)
}

func uniquePageIDs(value any) error {
	ids, ok := value.([]uuid.UUID)
	if !ok {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return validation.NewError("section_page_duplicate", "section references the same page twice")
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Page is a content node inside a domain. Slug uniqueness is scoped to
// (domain_id, parent_id), never global.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID              uuid.UUID            `bun:",pk,type:uuid" json:"id"`
	DomainID        uuid.UUID            `bun:"domain_id,notnull,type:uuid" json:"domain_id"`
	ParentID        *uuid.UUID           `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	Slug            string               `bun:"slug,notnull" json:"slug"`
	Title           string               `bun:"title,notnull" json:"title"`
	ContentType     ContentType          `bun:"content_type,notnull" json:"content_type"`
	SortOrder       int                  `bun:"sort_order,notnull,default:0" json:"sort_order"`
	TargetCountries countries.TargetList `bun:"target_countries,type:jsonb" json:"target_countries,omitempty"`
	Sections        []SectionConfig      `bun:"sections,type:jsonb" json:"sections,omitempty"`
	CreatedBy       uuid.UUID            `bun:"created_by,notnull,type:uuid" json:"created_by"`
	UpdatedBy       uuid.UUID            `bun:"updated_by,notnull,type:uuid" json:"updated_by"`
	CreatedAt       time.Time            `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time            `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Targets satisfies countries.Targeted.
func (p *Page) Targets() countries.TargetList {
	return p.TargetCountries
}

// IsSyntheticRoot reports whether the page is a domain's hidden root.
func (p *Page) IsSyntheticRoot() bool {
	return p.ParentID == nil && p.Slug == SyntheticRootSlug
}
