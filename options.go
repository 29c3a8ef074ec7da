package tooldef

import (
	"maps"
	"reflect"
)

// NameMapping replaces the public name of a callable. From is matched against the
// qualified declaration path (e.g. "Calculator.Add") and against the simple name.
type NameMapping struct {
	From string
	To   string
}

// generatorOptions hold generator settings before they are frozen by New.
type generatorOptions struct {
	typeMap          map[reflect.Type]string
	strict           bool
	documentDefaults bool
	nameMappings     []NameMapping
}

// Option configures a Generator (e.g. WithStrict, WithTypeMap).
type Option func(*generatorOptions)

// WithTypeMap sets the mapping from type markers to schema type names.
// A nil map keeps DefaultTypeMap; an empty map is used as-is and every type falls back to "string".
func WithTypeMap(m map[reflect.Type]string) Option {
	return func(o *generatorOptions) {
		o.typeMap = m
	}
}

// WithStrict sets strict mode. Strict generators reject missing docs, parameter
// annotations and parameter descriptions; permissive ones use "string" and "". Default: true.
func WithStrict(strict bool) Option {
	return func(o *generatorOptions) {
		o.strict = strict
	}
}

// WithDocumentDefaults controls whether default values are appended to parameter
// descriptions as " (default: <value>)". Default: true.
func WithDocumentDefaults(enable bool) Option {
	return func(o *generatorOptions) {
		o.documentDefaults = enable
	}
}

// WithNameMappings appends name mappings. When the same From appears more than once,
// the last one wins.
func WithNameMappings(mappings ...NameMapping) Option {
	return func(o *generatorOptions) {
		o.nameMappings = append(o.nameMappings, mappings...)
	}
}

// DefaultTypeMap returns a fresh copy of the default type map
// (string, int, float64, bool).
func DefaultTypeMap() map[reflect.Type]string {
	return maps.Clone(defaultTypeMap)
}

var defaultTypeMap = map[reflect.Type]string{
	reflect.TypeFor[string]():  "string",
	reflect.TypeFor[int]():     "integer",
	reflect.TypeFor[float64](): "number",
	reflect.TypeFor[bool]():    "boolean",
}
