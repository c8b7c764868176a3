package countries

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Code is an ISO 3166-1 alpha-2 viewer country, uppercase.
type Code string

// All marks an entity visible to every viewer country. It is mutually
// exclusive with an explicit country list; normalization enforces that.
const All Code = "ALL"

var codePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// TargetList is a normalized country restriction: either exactly [All] or an
// explicit, sorted-free list of uppercase codes. An empty list means All.
type TargetList []Code

// NormalizeTargets canonicalizes raw country values: trims, uppercases,
// drops empties and duplicates, and collapses any list containing ALL to
// the single ALL marker.
func NormalizeTargets(values []string) TargetList {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[Code]struct{}, len(values))
	out := make(TargetList, 0, len(values))
	for _, raw := range values {
		code := Code(strings.ToUpper(strings.TrimSpace(raw)))
		if code == "" {
			continue
		}
		if code == All {
			return TargetList{All}
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IsAll reports whether the list admits every viewer country.
func (t TargetList) IsAll() bool {
	if len(t) == 0 {
		return true
	}
	return len(t) == 1 && t[0] == All
}

// Visible reports whether a viewer from the given country may see the entity.
func (t TargetList) Visible(viewer Code) bool {
	if t.IsAll() {
		return true
	}
	viewer = Code(strings.ToUpper(strings.TrimSpace(string(viewer))))
	for _, code := range t {
		if code == viewer {
			return true
		}
	}
	return false
}

// Validate enforces the normalization invariant: the list is either the ALL
// marker alone or explicit two-letter uppercase codes with no duplicates.
func (t TargetList) Validate() error {
	if len(t) == 0 {
		return nil
	}
	if t[0] == All || len(t) == 1 && t[0] == All {
		if len(t) > 1 {
			return validation.NewError("countries_all_exclusive", "ALL cannot be combined with explicit countries")
		}
		return nil
	}
	seen := make(map[Code]struct{}, len(t))
	for _, code := range t {
		if code == All {
			return validation.NewError("countries_all_exclusive", "ALL cannot be combined with explicit countries")
		}
		if err := validation.Validate(string(code), validation.Match(codePattern)); err != nil {
			return validation.NewError("countries_code_invalid", "country codes must be two uppercase letters")
		}
		if _, dup := seen[code]; dup {
			return validation.NewError("countries_code_duplicate", "duplicate country code")
		}
		seen[code] = struct{}{}
	}
	return nil
}

// Clone returns an independent copy, preserving nil for the ALL default.
func (t TargetList) Clone() TargetList {
	if len(t) == 0 {
		return nil
	}
	out := make(TargetList, len(t))
	copy(out, t)
	return out
}

// Strings converts the list back to its storage representation.
func (t TargetList) Strings() []string {
	if len(t) == 0 {
		return nil
	}
	out := make([]string, len(t))
	for i, code := range t {
		out[i] = string(code)
	}
	return out
}
