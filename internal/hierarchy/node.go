package hierarchy

import (
	"slices"
	"strings"

	"github.com/goliatone/go-sitenav/internal/pages"
)

// PageNode is one page placed in its domain tree. Depth and PathSegments are
// computed during Build; PathSegments never include the synthetic root slug.
type PageNode struct {
	Page         *pages.Page
	Children     []*PageNode
	Depth        int
	PathSegments []string
}

// IsSyntheticRoot reports whether the node wraps a hidden single-root page.
func (n *PageNode) IsSyntheticRoot() bool {
	return n != nil && n.Page != nil && n.Page.IsSyntheticRoot()
}

// Path joins the node's segments with "/". Empty for the synthetic root.
func (n *PageNode) Path() string {
	if n == nil {
		return ""
	}
	return strings.Join(n.PathSegments, "/")
}

// Walk visits the node and its descendants depth-first in display order.
func (n *PageNode) Walk(visit func(*PageNode) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// VisibleRoots returns the externally visible top level: a synthetic root is
// replaced in place by its children, and the hidden root itself is returned
// separately when present. Orphan and cycle promotion can put additional
// roots next to a synthetic one, so transparency must never assume the root
// is alone at its level.
func VisibleRoots(roots []*PageNode) ([]*PageNode, *PageNode) {
	for i, root := range roots {
		if !root.IsSyntheticRoot() {
			continue
		}
		level := make([]*PageNode, 0, len(roots)-1+len(root.Children))
		level = append(level, roots[:i]...)
		level = append(level, root.Children...)
		level = append(level, roots[i+1:]...)
		return level, root
	}
	return roots, nil
}

// Find descends from the given roots through the path segments, one slug per
// level. A synthetic root is transparent: lookups descend through it without
// consuming a segment. Returns nil when any segment fails to match.
func Find(roots []*PageNode, segments []string) *PageNode {
	level, hiddenRoot := VisibleRoots(roots)
	if len(segments) == 0 {
		return hiddenRoot
	}

	var current *PageNode
	for _, segment := range segments {
		current = nil
		for _, candidate := range level {
			if candidate.Page.Slug == segment {
				current = candidate
				break
			}
		}
		if current == nil {
			return nil
		}
		level = current.Children
	}
	return current
}

// sortNodes orders siblings by sort order, then creation time, then ID so
// ordering stays stable when authors assign duplicate positions.
func sortNodes(nodes []*PageNode) {
	slices.SortStableFunc(nodes, func(a, b *PageNode) int {
		if a.Page.SortOrder != b.Page.SortOrder {
			if a.Page.SortOrder < b.Page.SortOrder {
				return -1
			}
			return 1
		}
		if !a.Page.CreatedAt.Equal(b.Page.CreatedAt) {
			if a.Page.CreatedAt.Before(b.Page.CreatedAt) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Page.ID.String(), b.Page.ID.String())
	})
}
