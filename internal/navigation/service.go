package navigation

import (
	"context"
	"errors"

	"github.com/goliatone/go-sitenav/internal/countries"
	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/hierarchy"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

// DefaultBreadcrumbThreshold is the trail length past which Resolve also
// exposes the collapsed display form.
const DefaultBreadcrumbThreshold = 4

// DefaultDomainsIndexLabel labels the outermost breadcrumb entry.
const DefaultDomainsIndexLabel = "Domains"

// DomainsIndexURL is the landing page for the domain listing.
const DomainsIndexURL = "/"

// Service resolves navigation reads: absolute paths to placed nodes,
// breadcrumb trails, and sidebar listings. All reads filter by viewer country
// before any tree or trail is derived.
type Service interface {
	Resolve(ctx context.Context, req ResolveRequest) (*ResolvedPage, error)
	Breadcrumbs(ctx context.Context, req BreadcrumbRequest) (Trail, error)
	Sidebar(ctx context.Context, req SidebarRequest) ([]SidebarEntry, error)
}

// ResolveRequest asks for the node behind an absolute path as one viewer
// sees it.
type ResolveRequest struct {
	Path          string
	ViewerCountry countries.Code
}

// ResolvedPage is a fully derived navigation view of one path.
type ResolvedPage struct {
	Domain *domains.Domain

	// Node is the resolved page. Nil for a multi-root domain's bare URL,
	// which addresses the domain itself rather than any single page.
	Node *hierarchy.PageNode

	URL         string
	Breadcrumbs Trail

	// Collapsed holds the bounded breadcrumb view when the trail exceeds
	// the configured threshold.
	Collapsed *CollapsedTrail

	// Sections is the node's children arranged in the column grid.
	Sections map[int][]Section
}

// BreadcrumbRequest asks for a trail over an absolute path. Trails are
// best-effort: segments that no longer resolve still yield a crumb.
type BreadcrumbRequest struct {
	Path          string
	ViewerCountry countries.Code
}

// SidebarRequest asks for a domain's top-level navigation listing.
type SidebarRequest struct {
	DomainSlug    string
	ViewerCountry countries.Code
}

// SidebarEntry is one top-level link in a domain's sidebar.
type SidebarEntry struct {
	Label string
	URL   string
	Node  *hierarchy.PageNode
}

type service struct {
	domains    domains.DomainRepository
	pages      pages.PageRepository
	builder    *hierarchy.Builder
	urls       hierarchy.URLResolver
	threshold  int
	indexLabel string
	logger     interfaces.Logger
}

// ServiceOption configures navigation service behaviour.
type ServiceOption func(*service)

// WithURLResolver overrides the URL resolver. Defaults to the path resolver.
func WithURLResolver(resolver hierarchy.URLResolver) ServiceOption {
	return func(s *service) {
		if resolver != nil {
			s.urls = resolver
		}
	}
}

// WithBreadcrumbThreshold overrides the trail length that triggers collapsing.
func WithBreadcrumbThreshold(threshold int) ServiceOption {
	return func(s *service) {
		if threshold >= 2 {
			s.threshold = threshold
		}
	}
}

// WithDomainsIndexLabel overrides the outermost breadcrumb label.
func WithDomainsIndexLabel(label string) ServiceOption {
	return func(s *service) {
		if label != "" {
			s.indexLabel = label
		}
	}
}

// WithLogger injects the module logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs the navigation service.
func NewService(domainRepo domains.DomainRepository, pageRepo pages.PageRepository, opts ...ServiceOption) Service {
	s := &service{
		domains:    domainRepo,
		pages:      pageRepo,
		threshold:  DefaultBreadcrumbThreshold,
		indexLabel: DefaultDomainsIndexLabel,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.builder = hierarchy.NewBuilder(hierarchy.WithLogger(s.logger))
	if s.urls == nil {
		s.urls = hierarchy.NewPathResolver()
	}
	return s
}

func (s *service) Resolve(ctx context.Context, req ResolveRequest) (*ResolvedPage, error) {
	parsed, err := ParseNavPath(req.Path)
	if err != nil {
		return nil, err
	}

	domain, roots, err := s.visibleTree(ctx, parsed.DomainSlug, req.ViewerCountry)
	if err != nil {
		return nil, err
	}
	if domain == nil {
		return nil, &UnresolvedPathError{Path: parsed.Raw}
	}

	node := hierarchy.Find(roots, parsed.Segments)
	if node == nil && len(parsed.Segments) > 0 {
		return nil, &UnresolvedPathError{Path: parsed.Raw}
	}

	resolved := &ResolvedPage{
		Domain: domain,
		Node:   node,
	}
	if node != nil {
		resolved.URL = s.urls.PageURL(domain, node)
		resolved.Sections = OrganizeSections(node.Page.Sections, node.Children)
	} else {
		level, _ := hierarchy.VisibleRoots(roots)
		resolved.URL = s.urls.DomainURL(domain)
		resolved.Sections = OrganizeSections(nil, level)
	}
	resolved.Breadcrumbs = s.trailFor(domain, roots, parsed.Segments)
	if collapsed, ok := resolved.Breadcrumbs.Collapse(s.threshold); ok {
		resolved.Collapsed = &collapsed
	}
	return resolved, nil
}

func (s *service) Breadcrumbs(ctx context.Context, req BreadcrumbRequest) (Trail, error) {
	parsed, err := ParseNavPath(req.Path)
	if err != nil {
		return nil, err
	}

	domain, roots, err := s.visibleTree(ctx, parsed.DomainSlug, req.ViewerCountry)
	if err != nil {
		return nil, err
	}
	if domain == nil {
		// Trails are best-effort even when the domain itself is gone.
		trail := Trail{{Label: s.indexLabel, URL: DomainsIndexURL, Kind: CrumbKindIndex}}
		trail = append(trail, Crumb{
			Label: humanizeSlug(parsed.DomainSlug),
			URL:   "/domain/" + parsed.DomainSlug,
			Kind:  CrumbKindDomain,
		})
		return appendFallbackCrumbs(trail, "/domain/"+parsed.DomainSlug, parsed.Segments), nil
	}
	return s.trailFor(domain, roots, parsed.Segments), nil
}

func (s *service) Sidebar(ctx context.Context, req SidebarRequest) ([]SidebarEntry, error) {
	domain, roots, err := s.visibleTree(ctx, req.DomainSlug, req.ViewerCountry)
	if err != nil {
		return nil, err
	}
	if domain == nil {
		return nil, &UnresolvedPathError{Path: "/domain/" + req.DomainSlug}
	}

	// Single-root domains have exactly one entry point, the domain URL, so
	// they expose no sidebar listing.
	if domain.AddressingMode == domains.AddressingSingleRoot {
		return nil, nil
	}

	// A synthetic root left behind by an addressing-mode switch is never
	// listed; its children surface in its place.
	level, _ := hierarchy.VisibleRoots(roots)
	entries := make([]SidebarEntry, 0, len(level))
	for _, root := range level {
		entries = append(entries, SidebarEntry{
			Label: root.Page.Title,
			URL:   s.urls.PageURL(domain, root),
			Node:  root,
		})
	}
	return entries, nil
}

// visibleTree fetches the domain and its pages, applies the viewer country
// filter, and builds the tree. Filtering happens before the builder runs so
// hidden nodes can never surface as ancestors, siblings, or counts. Returns a
// nil domain when the domain is missing, unpublished, or hidden from the
// viewer; the three cases are indistinguishable to callers.
func (s *service) visibleTree(ctx context.Context, domainSlug string, viewer countries.Code) (*domains.Domain, []*hierarchy.PageNode, error) {
	domain, err := s.domains.GetBySlug(ctx, domainSlug)
	if err != nil {
		if errors.Is(err, domains.ErrDomainNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if !domain.Published || !domain.Targets().Visible(viewer) {
		return nil, nil, nil
	}

	pageList, err := s.pages.ListByDomain(ctx, domain.ID)
	if err != nil {
		return nil, nil, err
	}
	visible := countries.Filter(pageList, viewer)
	result := s.builder.Build(domain, visible)
	return domain, result.Roots, nil
}
