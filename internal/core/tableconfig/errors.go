package tableconfig

import (
	"errors"
	"fmt"
)

// Common table configuration errors
var (
	// ErrPropertyNotSet reports a read of a property that has neither an
	// entry in the configuration nor a default value.
	ErrPropertyNotSet = errors.New("table property is not set and has no default")
)

// UnknownConfigurationError reports a key inside the reserved namespace that
// no registered property matches. Key keeps the spelling the caller supplied.
type UnknownConfigurationError struct {
	Key string
}

func (e *UnknownConfigurationError) Error() string {
	return fmt.Sprintf("unknown configuration was specified: %s", e.Key)
}

// CannotModifyPropertyError reports an attempt to set a property that is not
// user-editable. Key keeps the spelling the caller supplied.
type CannotModifyPropertyError struct {
	Key string
}

func (e *CannotModifyPropertyError) Error() string {
	return fmt.Sprintf("the table property %q is an internal property and cannot be updated", e.Key)
}

// InvalidConfigurationValueError reports a property value that failed to
// parse or was rejected by the property's validation rule. Key is the
// property's canonical key and Help is its remediation message. Cause holds
// the underlying parse error, if any.
type InvalidConfigurationValueError struct {
	Key   string
	Value string
	Help  string
	Cause error
}

func (e *InvalidConfigurationValueError) Error() string {
	return fmt.Sprintf("invalid value for table property %q: %q. %s", e.Key, e.Value, e.Help)
}

func (e *InvalidConfigurationValueError) Unwrap() error {
	return e.Cause
}
