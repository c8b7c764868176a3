package hierarchy

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

// Builder assembles parent-pointer page records into display trees.
type Builder struct {
	logger interfaces.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger injects the module logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder constructs a Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{logger: logging.NoOp()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result is the outcome of one tree build. Orphans counts pages whose parent
// record was missing; Cycles counts parent chains that never reached a root.
// Both are repaired in place by promoting the affected page to a root.
type Result struct {
	Roots   []*PageNode
	Orphans int
	Cycles  int
}

// Build assembles the domain's pages into ordered trees. Callers must filter
// the page list for viewer visibility before calling Build; the builder never
// sees pages the viewer cannot see, so an invisible parent makes its subtree
// unreachable by construction.
func (b *Builder) Build(domain *domains.Domain, pageList []*pages.Page) *Result {
	result := &Result{}
	if domain == nil || len(pageList) == 0 {
		return result
	}

	index := make(map[uuid.UUID]*PageNode, len(pageList))
	for _, page := range pageList {
		index[page.ID] = &PageNode{Page: page}
	}

	for _, node := range index {
		parentID := node.Page.ParentID
		if parentID == nil {
			result.Roots = append(result.Roots, node)
			continue
		}
		parent, ok := index[*parentID]
		if !ok {
			// Parent missing or filtered out; degrade to a root so the
			// page stays reachable.
			result.Orphans++
			b.logger.Warn("page parent not in build set, promoting to root",
				"domain", domain.Slug,
				"page_id", node.Page.ID.String(),
				"parent_id", parentID.String(),
			)
			result.Roots = append(result.Roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	b.breakCycles(domain, index, result)

	for _, node := range index {
		sortNodes(node.Children)
	}
	sortNodes(result.Roots)

	for _, root := range result.Roots {
		annotate(root, 0, nil)
	}
	return result
}

// breakCycles promotes one deterministic member of each unreachable parent
// chain to a root until every node is reachable.
func (b *Builder) breakCycles(domain *domains.Domain, index map[uuid.UUID]*PageNode, result *Result) {
	reached := make(map[uuid.UUID]bool, len(index))
	mark := func(root *PageNode) {
		root.Walk(func(n *PageNode) bool {
			reached[n.Page.ID] = true
			return true
		})
	}
	for _, root := range result.Roots {
		mark(root)
	}

	for len(reached) < len(index) {
		var entry *PageNode
		remaining := make([]*PageNode, 0)
		for id, node := range index {
			if !reached[id] {
				remaining = append(remaining, node)
			}
		}
		sortNodes(remaining)
		entry = remaining[0]

		detach(index, entry)
		result.Roots = append(result.Roots, entry)
		result.Cycles++
		b.logger.Warn("parent chain forms cycle, promoting page to root",
			"domain", domain.Slug,
			"page_id", entry.Page.ID.String(),
		)
		mark(entry)
	}
}

// detach removes the node from its parent's child list.
func detach(index map[uuid.UUID]*PageNode, node *PageNode) {
	if node.Page.ParentID == nil {
		return
	}
	parent, ok := index[*node.Page.ParentID]
	if !ok {
		return
	}
	children := parent.Children[:0]
	for _, child := range parent.Children {
		if child != node {
			children = append(children, child)
		}
	}
	parent.Children = children
}

// annotate assigns depth and URL path segments. The synthetic root keeps an
// empty segment list so it never appears in descendant URLs.
func annotate(node *PageNode, depth int, parentSegments []string) {
	node.Depth = depth
	if node.IsSyntheticRoot() {
		node.PathSegments = nil
	} else {
		segments := make([]string, 0, len(parentSegments)+1)
		segments = append(segments, parentSegments...)
		segments = append(segments, node.Page.Slug)
		node.PathSegments = segments
	}
	for _, child := range node.Children {
		annotate(child, depth+1, node.PathSegments)
	}
}
