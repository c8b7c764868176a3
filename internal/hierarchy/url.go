package hierarchy

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-sitenav/internal/domains"
)

// URLResolver turns a placed node into a canonical navigation URL. Every URL
// the engine emits, for pages, breadcrumbs, and sidebars alike, comes from one
// resolver so formats can never drift apart.
type URLResolver interface {
	DomainURL(domain *domains.Domain) string
	PageURL(domain *domains.Domain, node *PageNode) string
}

// PathResolver is the default resolver producing "/domain/{slug}" URLs with
// "/"-joined page segments appended.
type PathResolver struct{}

// NewPathResolver constructs the default resolver.
func NewPathResolver() *PathResolver {
	return &PathResolver{}
}

func (r *PathResolver) DomainURL(domain *domains.Domain) string {
	if domain == nil {
		return ""
	}
	return "/domain/" + domain.Slug
}

// PageURL returns the node's canonical URL. The synthetic root has no
// segments of its own, so it resolves to the bare domain URL.
func (r *PathResolver) PageURL(domain *domains.Domain, node *PageNode) string {
	base := r.DomainURL(domain)
	if base == "" || node == nil || len(node.PathSegments) == 0 {
		return base
	}
	return base + "/" + strings.Join(node.PathSegments, "/")
}

// URLKitResolverOptions configures the go-urlkit backed resolver. The routes
// must accept a "slug" param for the domain and a wildcard "path" param for
// the joined page segments.
type URLKitResolverOptions struct {
	Manager     *urlkit.RouteManager
	Group       string
	DomainRoute string
	PageRoute   string
	SlugParam   string
	PathParam   string
}

// URLKitResolver resolves navigation URLs through a go-urlkit RouteManager,
// for hosts that already centralize their route definitions there. It falls
// back to PathResolver output when a route cannot be built.
type URLKitResolver struct {
	manager     *urlkit.RouteManager
	group       string
	domainRoute string
	pageRoute   string
	slugParam   string
	pathParam   string

	fallback *PathResolver
}

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.Group == "" {
		opts.Group = "nav"
	}
	if opts.DomainRoute == "" {
		opts.DomainRoute = "domain"
	}
	if opts.PageRoute == "" {
		opts.PageRoute = "page"
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	if opts.PathParam == "" {
		opts.PathParam = "path"
	}
	return &URLKitResolver{
		manager:     opts.Manager,
		group:       strings.TrimSpace(opts.Group),
		domainRoute: strings.TrimSpace(opts.DomainRoute),
		pageRoute:   strings.TrimSpace(opts.PageRoute),
		slugParam:   opts.SlugParam,
		pathParam:   opts.PathParam,
		fallback:    NewPathResolver(),
	}
}

func (r *URLKitResolver) DomainURL(domain *domains.Domain) string {
	if domain == nil {
		return ""
	}
	url, err := r.build(r.domainRoute, map[string]any{
		r.slugParam: domain.Slug,
	})
	if err != nil {
		return r.fallback.DomainURL(domain)
	}
	return url
}

func (r *URLKitResolver) PageURL(domain *domains.Domain, node *PageNode) string {
	if domain == nil {
		return ""
	}
	if node == nil || len(node.PathSegments) == 0 {
		return r.DomainURL(domain)
	}
	url, err := r.build(r.pageRoute, map[string]any{
		r.slugParam: domain.Slug,
		r.pathParam: strings.Join(node.PathSegments, "/"),
	})
	if err != nil {
		return r.fallback.PageURL(domain, node)
	}
	return url
}

func (r *URLKitResolver) build(route string, params map[string]any) (string, error) {
	group, err := r.lookupGroup()
	if err != nil {
		return "", err
	}
	builder, err := r.safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, val := range params {
		builder.WithParam(key, val)
	}
	return builder.Build()
}

func (r *URLKitResolver) lookupGroup() (group *urlkit.Group, err error) {
	if r.manager == nil {
		return nil, fmt.Errorf("hierarchy: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("hierarchy: route group %q not found", r.group)
		}
	}()
	group = r.manager.Group(r.group)
	return group, err
}

func (r *URLKitResolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("hierarchy: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("hierarchy: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
