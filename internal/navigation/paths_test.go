package navigation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sitenav/internal/navigation"
)

func TestParseNavPath(t *testing.T) {
	parsed, err := navigation.ParseNavPath("/domain/webdev/with-code/youtube-channel")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.DomainSlug != "webdev" {
		t.Fatalf("domain slug = %q", parsed.DomainSlug)
	}
	if len(parsed.Segments) != 2 || parsed.Segments[0] != "with-code" || parsed.Segments[1] != "youtube-channel" {
		t.Fatalf("segments = %v", parsed.Segments)
	}
	if parsed.Raw != "/domain/webdev/with-code/youtube-channel" {
		t.Fatalf("raw = %q", parsed.Raw)
	}
}

func TestParseNavPathBareDomain(t *testing.T) {
	parsed, err := navigation.ParseNavPath("/domain/gdesign")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.DomainSlug != "gdesign" || len(parsed.Segments) != 0 {
		t.Fatalf("parsed = %+v", parsed)
	}
}

func TestParseNavPathTrailingSlash(t *testing.T) {
	parsed, err := navigation.ParseNavPath("/domain/webdev/with-code/")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(parsed.Segments) != 1 || parsed.Segments[0] != "with-code" {
		t.Fatalf("segments = %v", parsed.Segments)
	}
}

func TestParseNavPathErrors(t *testing.T) {
	cases := []struct {
		name string
		path string
		want error
	}{
		{"empty", "", navigation.ErrPathRequired},
		{"blank", "   ", navigation.ErrPathRequired},
		{"slash only", "/", navigation.ErrPathInvalid},
		{"missing prefix", "/pages/webdev", navigation.ErrPathInvalid},
		{"no domain slug", "/domain", navigation.ErrPathInvalid},
		{"bad segment chars", "/domain/webdev/With Code", navigation.ErrPathInvalid},
		{"empty segment", "/domain/webdev//x", navigation.ErrPathInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := navigation.ParseNavPath(tc.path); !errors.Is(err, tc.want) {
				t.Fatalf("ParseNavPath(%q) = %v, want %v", tc.path, err, tc.want)
			}
		})
	}
}
