//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// Field returns a mutation that sets a map key, or removes it when value is
// nil, for building invalid request variants.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// DtoMap round-trips a DTO through JSON into a map and applies mutations.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, f := range muts {
		f(m)
	}
	return m
}
