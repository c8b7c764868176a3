package countries

// Targeted is satisfied by every entity carrying a country restriction.
type Targeted interface {
	Targets() TargetList
}

// Filter keeps the entities visible to the viewer country, preserving input
// order. It is the mandatory pre-filter for everything the hierarchy builder
// and navigation resolvers consume: visibility is applied before any tree is
// built so a restricted node can never surface as an ancestor, sibling, or
// count in derived structures.
func Filter[T Targeted](items []T, viewer Code) []T {
	if len(items) == 0 {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Targets().Visible(viewer) {
			out = append(out, item)
		}
	}
	return out
}
