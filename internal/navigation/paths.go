package navigation

import "strings"

// NavPath captures parsed information about an absolute navigation path.
//
// Example:
// - Raw:        "/domain/webdev/with-code/youtube-channel"
// - DomainSlug: "webdev"
// - Segments:   ["with-code", "youtube-channel"]
type NavPath struct {
	Raw        string
	DomainSlug string
	Segments   []string
}

// ParseNavPath parses an absolute "/domain/{slug}/..." path.
//
// Invariants:
// - Path must start with the literal "domain" segment followed by a domain slug.
// - No empty segments; a trailing slash is tolerated.
func ParseNavPath(path string) (NavPath, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NavPath{}, ErrPathRequired
	}

	trimmed = strings.Trim(trimmed, "/")
	if trimmed == "" {
		return NavPath{}, ErrPathInvalid
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 || parts[0] != "domain" {
		return NavPath{}, ErrPathInvalid
	}

	for _, part := range parts[1:] {
		if !isPathSegment(part) {
			return NavPath{}, ErrPathInvalid
		}
	}

	var segments []string
	if len(parts) > 2 {
		segments = parts[2:]
	}

	return NavPath{
		Raw:        "/" + trimmed,
		DomainSlug: parts[1],
		Segments:   segments,
	}, nil
}

func isPathSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		switch {
		case r >= 'a' && r <= 'z':
			continue
		case r >= '0' && r <= '9':
			continue
		case r == '_' || r == '-':
			continue
		default:
			return false
		}
	}
	return true
}
