package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashKey returns a stable hex identifier for an arbitrary string.
func HashKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashJSON returns a stable hex identifier for the JSON encoding of v.
// Struct fields marshal in declaration order, so identical values always
// produce identical keys.
func HashJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
