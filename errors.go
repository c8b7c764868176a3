package sitenav

import (
	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/navigation"
	"github.com/goliatone/go-sitenav/internal/pages"
)

// Re-exported sentinel errors so callers can match engine failures with
// errors.Is without importing internal packages.
var (
	ErrDomainNotFound        = domains.ErrDomainNotFound
	ErrDomainSlugExists      = domains.ErrSlugExists
	ErrDomainHasPages        = domains.ErrDomainHasPages
	ErrAddressingModeInvalid = domains.ErrAddressingModeInvalid
	ErrCategoryNotFound      = domains.ErrCategoryNotFound

	ErrPageNotFound        = pages.ErrPageNotFound
	ErrSlugConflict        = pages.ErrSlugExists
	ErrSlugReserved        = pages.ErrSlugReserved
	ErrInvalidParent       = pages.ErrParentInvalid
	ErrParentCycle         = pages.ErrParentCycle
	ErrPageHasChildren     = pages.ErrPageHasChildren
	ErrRootImmutable       = pages.ErrRootImmutable
	ErrSectionPageNotChild = pages.ErrSectionPageNotChild

	ErrPathRequired   = navigation.ErrPathRequired
	ErrPathInvalid    = navigation.ErrPathInvalid
	ErrUnresolvedPath = navigation.ErrUnresolvedPath
)
