package tableconfig

import (
	"strings"
)

// ValidateProperties checks a batch of proposed table properties and returns
// the batch with keys canonicalized. Keys inside the reserved namespace must
// name a registered, user-editable property and carry a value the property
// accepts; their output entry uses the property's canonical key spelling.
// Keys outside the namespace pass through with the key lower-cased and the
// value untouched.
//
// Validation fails fast: the first offending entry encountered aborts the
// batch and nothing is returned. Map iteration order decides which of several
// offending entries is reported.
func (r *Registry) ValidateProperties(proposed map[string]string) (map[string]string, error) {
	validated := make(map[string]string, len(proposed))
	for key, value := range proposed {
		normalized := strings.ToLower(key)
		if !strings.HasPrefix(normalized, Prefix) {
			validated[normalized] = value
			continue
		}

		property, ok := r.Lookup(normalized)
		if !ok {
			return nil, &UnknownConfigurationError{Key: key}
		}
		if !property.Editable() {
			return nil, &CannotModifyPropertyError{Key: key}
		}
		if err := property.ValidateRaw(value); err != nil {
			return nil, err
		}
		validated[property.Key()] = value
	}
	return validated, nil
}

// ValidateTableProperties validates a batch of proposed properties against
// the default registry.
func ValidateTableProperties(proposed map[string]string) (map[string]string, error) {
	return Default().ValidateProperties(proposed)
}
