package cache

import (
	"fmt"
	"strings"
)

// GenerateKey creates a cache key with prefix and ID.
func GenerateKey(prefix string, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// GenerateKeyWithParams creates a cache key with multiple parameters.
// String parameters are lower-cased so name lookups share a key regardless of case.
func GenerateKeyWithParams(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		if s, ok := param.(string); ok {
			param = strings.ToLower(strings.TrimSpace(s))
		}
		key = fmt.Sprintf("%s:%v", key, param)
	}
	return key
}
