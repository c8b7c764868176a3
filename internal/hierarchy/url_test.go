package hierarchy_test

import (
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-sitenav/internal/hierarchy"
)

func navRouteManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "nav",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"domain": "/domain/:slug",
					"page":   "/domain/:slug/:path",
				},
			},
		},
	})
}

func TestURLKitResolverBuildsRoutes(t *testing.T) {
	resolver := hierarchy.NewURLKitResolver(hierarchy.URLKitResolverOptions{
		Manager: navRouteManager(),
	})
	domain := multiRootDomain("webdev")
	withCode := page(domain, nil, "with-code", 1, 0)

	if got := resolver.DomainURL(domain); got != "https://example.com/domain/webdev" {
		t.Fatalf("unexpected domain url %q", got)
	}
	node := &hierarchy.PageNode{Page: withCode, PathSegments: []string{"with-code"}}
	if got := resolver.PageURL(domain, node); got != "https://example.com/domain/webdev/with-code" {
		t.Fatalf("unexpected page url %q", got)
	}
}

func TestURLKitResolverFallsBackWhenGroupMissing(t *testing.T) {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths:   map[string]string{"page": "/pages/:slug"},
			},
		},
	})
	resolver := hierarchy.NewURLKitResolver(hierarchy.URLKitResolverOptions{
		Manager: manager,
	})
	domain := multiRootDomain("webdev")
	withCode := page(domain, nil, "with-code", 1, 0)

	if got := resolver.DomainURL(domain); got != "/domain/webdev" {
		t.Fatalf("expected path fallback for a missing group, got %q", got)
	}
	node := &hierarchy.PageNode{Page: withCode, PathSegments: []string{"with-code"}}
	if got := resolver.PageURL(domain, node); got != "/domain/webdev/with-code" {
		t.Fatalf("expected path fallback for a missing group, got %q", got)
	}
}

func TestURLKitResolverFallsBackWithoutManager(t *testing.T) {
	resolver := hierarchy.NewURLKitResolver(hierarchy.URLKitResolverOptions{})
	domain := multiRootDomain("webdev")

	if got := resolver.DomainURL(domain); got != "/domain/webdev" {
		t.Fatalf("expected path fallback without a manager, got %q", got)
	}
}
