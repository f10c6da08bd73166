// Package store persists harvested records and raw attachment bytes under a
// deterministic key scheme, either on the local filesystem or in S3.
package store

import (
	"context"
	"fmt"
	"strings"
)

// Store writes a blob at a slash-separated key.
type Store interface {
	Put(ctx context.Context, key string, body []byte) error
}

// DocumentKey is the location of one attachment's raw bytes.
func DocumentKey(prefix, state, solicitationID, name string) string {
	return fmt.Sprintf("%s/%s/%s/documents/%s", prefix, state, solicitationID, SanitizeName(name))
}

// RecordKey is the canonical location of a solicitation's JSON record. The
// solicitation number is the persistence key; a record without one cannot be
// stored here.
func RecordKey(prefix, state, solicitationID string) string {
	return fmt.Sprintf("%s/%s/%s/json/%s.json", prefix, state, solicitationID, solicitationID)
}

// BatchKey is the location of the aggregate array for a whole run.
func BatchKey(prefix string) string {
	return prefix + "/solicitations.json"
}

// SanitizeName makes a document label safe to use as a file name: characters
// that filesystems or key schemes reject become underscores, and the result
// is truncated to stay under common 255-byte limits.
func SanitizeName(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*', '=':
			return '_'
		}
		return r
	}, name)
	if len(sanitized) > 250 {
		sanitized = sanitized[:250]
	}
	return sanitized
}
