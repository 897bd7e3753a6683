package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// ResultKey builds the cache key for a calculation result. The key hashes
// the canonical input together with the effective parameters, so any
// change to either - including a parameter override - lands on a different
// entry. The model key namespaces entries across calculation models.
func ResultKey(modelKey string, in schema.CanonicalInput, p schema.Parameters) string {
	return hashKey("result:"+modelKey, in, p)
}

// hashKey generates a cache key by hashing the JSON form of the parts.
// The full SHA-256 digest is kept to rule out collisions.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash computes the SHA-256 hex digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
