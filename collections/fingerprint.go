package collections

import (
	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-collect/arr"
)

// fingerprint returns a comparable content key for v. Scalars use their
// strict identity; lists and mappings are keyed by a BLAKE2b-256 digest of
// their JSON encoding so that equal content collapses to one key.
func fingerprint(v any) any {
	if arr.ShapeOf(v) == arr.Scalar {
		return arr.Identity(v)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return arr.Identity(v)
	}
	return blake2b.Sum256(b)
}
