package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by entity type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// DomainUUID derives a stable domain identifier from its slug so seed runs are idempotent.
func DomainUUID(slug string) uuid.UUID {
	return UUID("sitenav:domain:" + strings.ToLower(strings.TrimSpace(slug)))
}

// RootPageUUID derives the identifier of a domain's synthetic root page.
// Deriving it from the domain ID means concurrent lazy creates converge on the
// same row instead of racing to insert two roots.
func RootPageUUID(domainID uuid.UUID) uuid.UUID {
	return UUID("sitenav:root_page:" + domainID.String())
}

// CategoryUUID derives a stable category identifier from its slug.
func CategoryUUID(slug string) uuid.UUID {
	return UUID("sitenav:category:" + strings.ToLower(strings.TrimSpace(slug)))
}
