package navigation

import (
	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/hierarchy"
)

// trailFor walks the slug sequence against the visible tree and emits one
// crumb per level, outermost first. Each segment resolves as a slug lookup
// scoped to the current parent, never globally, since slugs are only unique
// per parent. Segments that fail to resolve produce humanized best-effort
// crumbs instead of failing the trail.
func (s *service) trailFor(domain *domains.Domain, roots []*hierarchy.PageNode, segments []string) Trail {
	trail := Trail{
		{Label: s.indexLabel, URL: DomainsIndexURL, Kind: CrumbKindIndex},
		{Label: domain.Name, URL: s.urls.DomainURL(domain), Kind: CrumbKindDomain},
	}

	level, _ := hierarchy.VisibleRoots(roots)

	for i, segment := range segments {
		var match *hierarchy.PageNode
		for _, candidate := range level {
			if candidate.Page.Slug == segment {
				match = candidate
				break
			}
		}
		if match == nil {
			return appendFallbackCrumbs(trail, trail[len(trail)-1].URL, segments[i:])
		}
		trail = append(trail, Crumb{
			Label: match.Page.Title,
			URL:   s.urls.PageURL(domain, match),
			Kind:  CrumbKindPage,
		})
		level = match.Children
	}
	return trail
}

// appendFallbackCrumbs emits humanized crumbs for raw segments that no longer
// resolve to pages, accumulating the raw path so links still point somewhere
// plausible.
func appendFallbackCrumbs(trail Trail, baseURL string, segments []string) Trail {
	url := baseURL
	for _, segment := range segments {
		url += "/" + segment
		trail = append(trail, Crumb{
			Label: humanizeSlug(segment),
			URL:   url,
			Kind:  CrumbKindPage,
		})
	}
	return trail
}
