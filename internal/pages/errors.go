package pages

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrSlugRequired        = errors.New("pages: slug is required")
	ErrSlugInvalid         = errors.New("pages: slug contains invalid characters")
	ErrSlugReserved        = errors.New("pages: slug is reserved for the synthetic root")
	ErrSlugExists          = errors.New("pages: slug already exists under this parent")
	ErrTitleRequired       = errors.New("pages: title is required")
	ErrContentTypeInvalid  = errors.New("pages: content type is invalid")
	ErrDomainRequired      = errors.New("pages: domain id is required")
	ErrPageNotFound        = errors.New("pages: page not found")
	ErrParentInvalid       = errors.New("pages: parent page invalid")
	ErrParentCycle         = errors.New("pages: parent assignment creates hierarchy cycle")
	ErrPageHasChildren     = errors.New("pages: page has children; enable cascade to delete")
	ErrRootImmutable       = errors.New("pages: synthetic root cannot be moved or deleted directly")
	ErrSectionPageNotChild = errors.New("pages: section references a page outside this page's children")
)

// PageNotFoundError carries the lookup key for missing page reads.
type PageNotFoundError struct {
	Key string
}

func (e *PageNotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return ErrPageNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrPageNotFound.Error(), e.Key)
}

func (e *PageNotFoundError) Unwrap() error {
	return ErrPageNotFound
}

// SlugConflictError reports a duplicate slug inside one (domain, parent) scope.
type SlugConflictError struct {
	DomainID uuid.UUID
	ParentID *uuid.UUID
	Slug     string
}

func (e *SlugConflictError) Error() string {
	if e == nil {
		return ErrSlugExists.Error()
	}
	scope := "top level"
	if e.ParentID != nil {
		scope = "parent " + e.ParentID.String()
	}
	return fmt.Sprintf("%s: %q under %s", ErrSlugExists.Error(), e.Slug, scope)
}

func (e *SlugConflictError) Unwrap() error {
	return ErrSlugExists
}

// ParentInvalidError reports a cross-domain or nonexistent parent reference.
type ParentInvalidError struct {
	DomainID uuid.UUID
	ParentID uuid.UUID
	Reason   string
}

func (e *ParentInvalidError) Error() string {
	if e == nil {
		return ErrParentInvalid.Error()
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (%s)", ErrParentInvalid.Error(), e.ParentID, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrParentInvalid.Error(), e.ParentID)
}

func (e *ParentInvalidError) Unwrap() error {
	return ErrParentInvalid
}
