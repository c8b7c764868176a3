package navigation

// Crumb kinds, from the outermost navigation level inward.
const (
	CrumbKindIndex  = "index"
	CrumbKindDomain = "domain"
	CrumbKindPage   = "page"
)

// Crumb is one breadcrumb trail entry.
type Crumb struct {
	Label string
	URL   string
	Kind  string
}

// Trail is an ordered breadcrumb trail, outermost entry first.
type Trail []Crumb

// CollapsedTrail is a bounded display form of a long trail: the UI renders
// the first and last crumbs inline and tucks the middle behind an overflow
// affordance.
type CollapsedTrail struct {
	First     Crumb
	Collapsed []Crumb
	Last      Crumb
}

// Collapse derives the bounded view when the trail exceeds the threshold.
// Returns false when the trail is short enough to render in full.
func (t Trail) Collapse(threshold int) (CollapsedTrail, bool) {
	if threshold < 2 || len(t) <= threshold {
		return CollapsedTrail{}, false
	}
	middle := make([]Crumb, len(t)-2)
	copy(middle, t[1:len(t)-1])
	return CollapsedTrail{
		First:     t[0],
		Collapsed: middle,
		Last:      t[len(t)-1],
	}, true
}
