package tooldef

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// receiverNames are parameter names that never appear in a schema.
var receiverNames = map[string]bool{"self": true, "cls": true}

var stringType = reflect.TypeFor[string]()

// fallbackType is used for unannotated parameters and unmapped type markers.
const fallbackType = "string"

// Generator turns Function descriptors into Definitions. Its configuration is frozen
// by New; Generate keeps no state between calls and is safe for concurrent use.
type Generator struct {
	typeMap          map[reflect.Type]string
	strict           bool
	documentDefaults bool
	nameMapping      map[string]string
}

// New creates a Generator. Defaults: DefaultTypeMap, strict, default values documented,
// no name mappings.
func New(opts ...Option) *Generator {
	o := generatorOptions{
		strict:           true,
		documentDefaults: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	typeMap := defaultTypeMap
	if o.typeMap != nil {
		typeMap = o.typeMap
	}
	nameMapping := make(map[string]string, len(o.nameMappings))
	for _, m := range o.nameMappings {
		nameMapping[m.From] = m.To
	}
	return &Generator{
		typeMap:          maps.Clone(typeMap),
		strict:           o.strict,
		documentDefaults: o.documentDefaults,
		nameMapping:      nameMapping,
	}
}

// TypeMap returns a copy of the type map.
func (g *Generator) TypeMap() map[reflect.Type]string { return maps.Clone(g.typeMap) }

// Strict reports whether missing docs and annotations are errors.
func (g *Generator) Strict() bool { return g.strict }

// DocumentDefaults reports whether default values are appended to descriptions.
func (g *Generator) DocumentDefaults() bool { return g.documentDefaults }

// NameMapping returns a copy of the name mapping table.
func (g *Generator) NameMapping() map[string]string { return maps.Clone(g.nameMapping) }

// Generate returns one Definition per function, in input order. The first invalid
// function aborts the whole call; no partial result is returned.
func (g *Generator) Generate(fns ...Function) ([]Definition, error) {
	defs := make([]Definition, 0, len(fns))
	for _, fn := range fns {
		if fn.Returns != nil && fn.Returns != stringType {
			return nil, &ValidationError{Function: fn.displayName(), Err: ErrBadReturn}
		}
		def, err := g.Introspect(fn)
		if err != nil {
			return nil, err
		}
		defs = append(defs, Definition{Kind: KindFunction, Function: def})
	}
	return defs, nil
}

// Introspect builds the function record for a single descriptor: description, parameters
// and public name. It does not check the declared result; Generate does.
func (g *Generator) Introspect(fn Function) (FunctionDef, error) {
	var description string
	if fn.Doc != "" {
		doc := strings.TrimSpace(fn.Doc)
		first, _, _ := strings.Cut(doc, "\n")
		description = strings.TrimSpace(first)
	} else if g.strict {
		return FunctionDef{}, &ValidationError{Function: fn.displayName(), Err: ErrMissingDoc}
	}

	params := newParameters()
	for _, p := range fn.Params {
		if receiverNames[p.Name] {
			continue
		}
		if _, dup := params.Properties.Get(p.Name); dup {
			return FunctionDef{}, &ValidationError{Function: fn.displayName(), Param: p.Name, Err: ErrDuplicateParam}
		}
		prop, err := g.property(fn, p)
		if err != nil {
			return FunctionDef{}, err
		}
		params.Properties.Set(p.Name, prop)
		if !p.HasDefault {
			params.Required = append(params.Required, p.Name)
		}
	}

	name, err := g.resolveName(fn)
	if err != nil {
		return FunctionDef{}, err
	}
	return FunctionDef{
		Name:        name,
		Description: description,
		Parameters:  params,
	}, nil
}

func (g *Generator) property(fn Function, p Param) (Property, error) {
	var prop Property
	switch ann := p.Annotation; {
	case ann == nil:
		if g.strict {
			return Property{}, &ValidationError{Function: fn.displayName(), Param: p.Name, Err: ErrMissingAnnotation}
		}
		prop.Type = fallbackType
	case ann.Qualified:
		prop.Type = g.schemaType(ann.Type)
		prop.Description = ann.Description
	default:
		if g.strict {
			return Property{}, &ValidationError{Function: fn.displayName(), Param: p.Name, Err: ErrMissingDescription}
		}
		prop.Type = g.schemaType(ann.Type)
	}
	if g.documentDefaults && prop.Description != "" && p.HasDefault {
		prop.Description = fmt.Sprintf("%s (default: %s)", prop.Description, formatDefault(p.Default))
	}
	return prop, nil
}

func (g *Generator) schemaType(t reflect.Type) string {
	if t == nil {
		return fallbackType
	}
	if s, ok := g.typeMap[t]; ok {
		return s
	}
	return fallbackType
}

// resolveName looks up the qualified path first, falls back to the simple name (or type
// name), then looks the result up again. The second lookup also applies to the
// replacement chosen by a qualified entry, so mappings can chain once.
func (g *Generator) resolveName(fn Function) (string, error) {
	var name string
	found := false
	if fn.QualName != "" {
		name, found = g.nameMapping[fn.QualName]
	}
	if !found {
		switch {
		case fn.Name != "":
			name = fn.Name
		case fn.TypeName != "":
			name = fn.TypeName
		default:
			return "", &ValidationError{Err: ErrMissingName}
		}
	}
	if mapped, ok := g.nameMapping[name]; ok {
		name = mapped
	}
	return name, nil
}
