package tableconfig

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry is the closed vocabulary of known table properties, indexed by
// lower-cased key. A registry is immutable after construction and safe for
// concurrent use.
type Registry struct {
	properties map[string]AnyProperty
}

// NewRegistry builds a registry from the given properties. It panics when two
// properties share a key after lower-casing, since that is a programming
// error in the property definitions.
func NewRegistry(properties ...AnyProperty) *Registry {
	indexed := make(map[string]AnyProperty, len(properties))
	for _, p := range properties {
		normalized := strings.ToLower(p.Key())
		if _, exists := indexed[normalized]; exists {
			panic(fmt.Sprintf("tableconfig: duplicate property key %q", p.Key()))
		}
		indexed[normalized] = p
	}
	return &Registry{properties: indexed}
}

// Lookup returns the property registered under the given key. The match is
// exact; callers normalize keys to lower case first.
func (r *Registry) Lookup(normalizedKey string) (AnyProperty, bool) {
	p, ok := r.properties[normalizedKey]
	return p, ok
}

// Keys returns the canonical keys of all registered properties in sorted
// order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.properties))
	for _, p := range r.properties {
		keys = append(keys, p.Key())
	}
	sort.Strings(keys)
	return keys
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry holding every built-in table
// property.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(
			TombstoneRetention,
			CheckpointInterval,
			LogRetention,
			ExpiredLogCleanupEnabled,
			InCommitTimestampsEnabled,
			InCommitTimestampEnablementVersion,
			InCommitTimestampEnablementTimestamp,
			ColumnMappingMode,
			ColumnMappingMaxColumnID,
			IcebergCompatV2Enabled,
		)
	})
	return defaultRegistry
}
