package navigation

import "strings"

// humanizeSlug turns a raw slug into a display label: hyphens and underscores
// become spaces and each word is capitalized ("client-management" reads
// "Client Management"). Used for best-effort crumbs when a path segment no
// longer resolves to a page.
func humanizeSlug(slug string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	words := strings.Fields(replaced)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
