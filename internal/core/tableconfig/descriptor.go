package tableconfig

import (
	"fmt"
)

// MetadataView is the read side contract a metadata entity satisfies so
// properties can be resolved from it.
type MetadataView interface {
	// Configuration returns the table's key-value configuration.
	Configuration() map[string]string
}

// AnyProperty is the string-level view of a property descriptor. It is what
// the registry stores and what the validation pipeline operates on, leaving
// the parsed value type to the typed Property accessor methods.
type AnyProperty interface {
	// Key returns the canonical property key, including the namespace prefix.
	Key() string
	// Editable reports whether users may set the property through the
	// validation pipeline.
	Editable() bool
	// HelpMessage returns the remediation text embedded in validation errors.
	HelpMessage() string
	// DefaultValue returns the raw default value and whether one exists.
	DefaultValue() (string, bool)
	// ValidateRaw checks a proposed raw value without materializing it for
	// the caller.
	ValidateRaw(value string) error
}

var _ AnyProperty = (*Property[int])(nil)

// Property describes a single table property with values of type T: its
// canonical key, optional raw default, parse function, and an optional
// validation rule applied to parsed values.
type Property[T any] struct {
	key        string
	defaultRaw string
	hasDefault bool
	optional   bool
	parse      func(string) (T, error)
	validate   func(T) bool
	help       string
	editable   bool
}

// NewProperty returns a descriptor for a property with a raw default value.
// A nil validate accepts every parseable value.
func NewProperty[T any](key, defaultValue string, parse func(string) (T, error), validate func(T) bool, help string, editable bool) *Property[T] {
	return &Property[T]{
		key:        key,
		defaultRaw: defaultValue,
		hasDefault: true,
		parse:      parse,
		validate:   validate,
		help:       help,
		editable:   editable,
	}
}

// NewOptionalProperty returns a descriptor for a property with no default.
// The value type is lifted to *T so an unset property reads as nil instead of
// failing.
func NewOptionalProperty[T any](key string, parse func(string) (T, error), validate func(T) bool, help string, editable bool) *Property[*T] {
	lifted := func(raw string) (*T, error) {
		v, err := parse(raw)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	var liftedValidate func(*T) bool
	if validate != nil {
		liftedValidate = func(v *T) bool {
			if v == nil {
				return true
			}
			return validate(*v)
		}
	}
	return &Property[*T]{
		key:      key,
		optional: true,
		parse:    lifted,
		validate: liftedValidate,
		help:     help,
		editable: editable,
	}
}

// Key returns the canonical property key.
func (p *Property[T]) Key() string { return p.key }

// Editable reports whether users may set the property.
func (p *Property[T]) Editable() bool { return p.editable }

// HelpMessage returns the remediation text embedded in validation errors.
func (p *Property[T]) HelpMessage() string { return p.help }

// DefaultValue returns the raw default value and whether one exists.
func (p *Property[T]) DefaultValue() (string, bool) { return p.defaultRaw, p.hasDefault }

// FromConfiguration resolves the property from a raw configuration map. The
// lookup uses the canonical key spelling; configurations produced by the
// validation pipeline always store properties under it. Absent entries fall
// back to the default value. Values are parsed and validated even when they
// come from the default.
func (p *Property[T]) FromConfiguration(configuration map[string]string) (T, error) {
	raw, ok := configuration[p.key]
	if !ok {
		if !p.hasDefault {
			var zero T
			if p.optional {
				return zero, nil
			}
			return zero, fmt.Errorf("%w: %s", ErrPropertyNotSet, p.key)
		}
		raw = p.defaultRaw
	}
	return p.materialize(raw)
}

// FromMetadata resolves the property from a metadata entity's configuration.
func (p *Property[T]) FromMetadata(m MetadataView) (T, error) {
	return p.FromConfiguration(m.Configuration())
}

// ValidateRaw checks a proposed raw value by parsing it and applying the
// property's validation rule.
func (p *Property[T]) ValidateRaw(value string) error {
	_, err := p.materialize(value)
	return err
}

func (p *Property[T]) materialize(raw string) (T, error) {
	v, err := p.parse(raw)
	if err != nil {
		var zero T
		return zero, &InvalidConfigurationValueError{Key: p.key, Value: raw, Help: p.help, Cause: err}
	}
	if p.validate != nil && !p.validate(v) {
		var zero T
		return zero, &InvalidConfigurationValueError{Key: p.key, Value: raw, Help: p.help}
	}
	return v, nil
}
