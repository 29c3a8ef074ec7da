// Package manifest reads callable descriptors and generator settings from files, for
// callables that are not Go values (scripts, RPC endpoints, other runtimes).
//
// A manifest is YAML:
//
//	functions:
//	  - name: add
//	    qualname: Calculator.add
//	    doc: Add two numbers.
//	    returns: string
//	    params:
//	      - name: self
//	      - name: a
//	        type: int
//	        description: first operand
//	      - name: b
//	        type: int
//	        description: second operand
//	        default: 0
//
// The annotation shape follows key presence: no type means unannotated, a type without
// description is a bare annotation, both make a qualified one.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/skosovsky/tooldef"
)

// Types is the type vocabulary of manifests and config files.
var Types = map[string]reflect.Type{
	"string":  reflect.TypeFor[string](),
	"int":     reflect.TypeFor[int](),
	"int64":   reflect.TypeFor[int64](),
	"float32": reflect.TypeFor[float32](),
	"float64": reflect.TypeFor[float64](),
	"bool":    reflect.TypeFor[bool](),
}

// TypeNames returns the vocabulary, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(Types))
	for name := range Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Manifest is a list of callable descriptors.
type Manifest struct {
	Functions []Function `yaml:"functions" json:"functions" validate:"dive"`
}

// Function describes one callable.
type Function struct {
	Name     string  `yaml:"name,omitempty" json:"name,omitempty"`
	QualName string  `yaml:"qualname,omitempty" json:"qualname,omitempty"`
	TypeName string  `yaml:"typename,omitempty" json:"typename,omitempty"`
	Doc      string  `yaml:"doc,omitempty" json:"doc,omitempty"`
	Returns  string  `yaml:"returns,omitempty" json:"returns,omitempty" validate:"omitempty,typename"`
	Params   []Param `yaml:"params,omitempty" json:"params,omitempty" validate:"unique=Name,dive"`
}

// Param describes one parameter. Default is kept as a node so that an explicit
// `default: null` is told apart from no default; Param is decoded from YAML only.
type Param struct {
	Name        string    `yaml:"name" json:"name" validate:"required"`
	Type        string    `yaml:"type,omitempty" json:"type,omitempty" validate:"omitempty,typename"`
	Description *string   `yaml:"description,omitempty" json:"description,omitempty"`
	Default     yaml.Node `yaml:"default,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if err := validate.Struct(m); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	return &m, nil
}

// Descriptors converts the manifest to descriptors, in file order.
func (m *Manifest) Descriptors() ([]tooldef.Function, error) {
	fns := make([]tooldef.Function, 0, len(m.Functions))
	for i, f := range m.Functions {
		fn, err := f.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("functions[%d]: %w", i, err)
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

// Descriptor converts f to a tooldef.Function.
func (f Function) Descriptor() (tooldef.Function, error) {
	fn := tooldef.Function{
		Name:     f.Name,
		QualName: f.QualName,
		TypeName: f.TypeName,
		Doc:      f.Doc,
		Params:   make([]tooldef.Param, 0, len(f.Params)),
	}
	if f.Returns != "" {
		t, err := lookupType(f.Returns)
		if err != nil {
			return tooldef.Function{}, err
		}
		fn.Returns = t
	}
	for _, p := range f.Params {
		param, err := p.param()
		if err != nil {
			return tooldef.Function{}, fmt.Errorf("param %q: %w", p.Name, err)
		}
		fn.Params = append(fn.Params, param)
	}
	return fn, nil
}

func (p Param) param() (tooldef.Param, error) {
	out := tooldef.Param{Name: p.Name}
	switch {
	case p.Type == "" && p.Description != nil:
		return tooldef.Param{}, errors.New("description given without type")
	case p.Type != "":
		t, err := lookupType(p.Type)
		if err != nil {
			return tooldef.Param{}, err
		}
		if p.Description != nil {
			out.Annotation = tooldef.Described(t, *p.Description)
		} else {
			out.Annotation = tooldef.TypeOf(t)
		}
	}
	if p.Default.Kind != 0 {
		var v any
		if err := p.Default.Decode(&v); err != nil {
			return tooldef.Param{}, fmt.Errorf("default: %w", err)
		}
		out = out.WithDefault(v)
	}
	return out, nil
}

func lookupType(name string) (reflect.Type, error) {
	t, ok := Types[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (want one of %v)", name, TypeNames())
	}
	return t, nil
}

// HasType reports whether name is part of the type vocabulary.
func HasType(name string) bool {
	_, ok := Types[name]
	return ok
}
