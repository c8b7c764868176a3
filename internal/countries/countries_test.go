package countries_test

import (
	"testing"

	"github.com/goliatone/go-sitenav/internal/countries"
)

func TestNormalizeTargets(t *testing.T) {
	got := countries.NormalizeTargets([]string{" us ", "in", "US", ""})
	if len(got) != 2 || got[0] != "US" || got[1] != "IN" {
		t.Fatalf("expected [US IN], got %v", got)
	}
}

func TestNormalizeTargetsCollapsesAll(t *testing.T) {
	got := countries.NormalizeTargets([]string{"US", "all", "IN"})
	if len(got) != 1 || got[0] != countries.All {
		t.Fatalf("expected [ALL], got %v", got)
	}
}

func TestNormalizeTargetsEmpty(t *testing.T) {
	if got := countries.NormalizeTargets(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := countries.NormalizeTargets([]string{"", "  "}); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}

func TestVisible(t *testing.T) {
	cases := []struct {
		name    string
		targets countries.TargetList
		viewer  countries.Code
		want    bool
	}{
		{"empty means all", nil, "US", true},
		{"all marker", countries.TargetList{countries.All}, "BR", true},
		{"match", countries.TargetList{"IN", "US"}, "US", true},
		{"match lowercase viewer", countries.TargetList{"IN"}, "in", true},
		{"no match", countries.TargetList{"IN"}, "US", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.targets.Visible(tc.viewer); got != tc.want {
				t.Fatalf("Visible(%q) = %v, want %v", tc.viewer, got, tc.want)
			}
		})
	}
}

func TestValidateRejectsAllWithExplicit(t *testing.T) {
	list := countries.TargetList{"US", countries.All}
	if err := list.Validate(); err == nil {
		t.Fatal("expected validation error for ALL combined with explicit codes")
	}
}

func TestValidateRejectsBadCode(t *testing.T) {
	list := countries.TargetList{"USA"}
	if err := list.Validate(); err == nil {
		t.Fatal("expected validation error for three-letter code")
	}
}

type targetedItem struct {
	name    string
	targets countries.TargetList
}

func (i targetedItem) Targets() countries.TargetList { return i.targets }

func TestFilterOrderPreservingAndIdempotent(t *testing.T) {
	items := []targetedItem{
		{name: "a", targets: nil},
		{name: "b", targets: countries.TargetList{"IN"}},
		{name: "c", targets: countries.TargetList{"US", "IN"}},
		{name: "d", targets: countries.TargetList{countries.All}},
	}

	once := countries.Filter(items, "US")
	if len(once) != 3 {
		t.Fatalf("expected 3 visible items, got %d", len(once))
	}
	if once[0].name != "a" || once[1].name != "c" || once[2].name != "d" {
		t.Fatalf("filter must preserve order, got %v", once)
	}

	twice := countries.Filter(once, "US")
	if len(twice) != len(once) {
		t.Fatalf("filter must be idempotent: %d != %d", len(twice), len(once))
	}
	for i := range twice {
		if twice[i].name != once[i].name {
			t.Fatalf("idempotent filter changed order at %d", i)
		}
	}
}
