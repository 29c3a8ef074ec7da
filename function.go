package tooldef

import (
	"reflect"
	"runtime"
	"strings"
)

// Function describes a callable: its identity, doc text, parameters and declared result.
// Build it with FromFunc, or fill it by hand when the callable is not a Go value
// (see the manifest package).
type Function struct {
	// Name is the simple name ("Add").
	Name string
	// QualName is the declaration path without the package ("Calculator.Add"); it
	// disambiguates methods with the same name on different types.
	QualName string
	// TypeName is the name of the callable's type; used when Name is empty.
	TypeName string
	// Doc is the documentation text; only its first line becomes the description.
	Doc    string
	Params []Param
	// Returns is the declared result type; nil means no declared result.
	Returns reflect.Type
}

// Param is a declared parameter. A nil Annotation means the parameter is unannotated.
type Param struct {
	Name       string
	Annotation *Annotation
	Default    any
	HasDefault bool
}

// Annotation is a parameter's type marker, optionally qualified with a description.
type Annotation struct {
	Type        reflect.Type
	Description string
	// Qualified is true when the annotation bundles a type and a description.
	Qualified bool
}

// Arg declares a parameter with the given annotation (nil for none).
func Arg(name string, ann *Annotation) Param {
	return Param{Name: name, Annotation: ann}
}

// Untyped declares a parameter without any annotation.
func Untyped(name string) Param {
	return Param{Name: name}
}

// WithDefault returns a copy of p with a default value; p is no longer required.
func (p Param) WithDefault(v any) Param {
	p.Default = v
	p.HasDefault = true
	return p
}

// Annotate returns a qualified annotation: type T plus a description.
func Annotate[T any](description string) *Annotation {
	return Described(reflect.TypeFor[T](), description)
}

// Bare returns an annotation carrying only the type marker T.
func Bare[T any]() *Annotation {
	return TypeOf(reflect.TypeFor[T]())
}

// Described is Annotate for a type known only at runtime.
func Described(t reflect.Type, description string) *Annotation {
	return &Annotation{Type: t, Description: description, Qualified: true}
}

// TypeOf is Bare for a type known only at runtime.
func TypeOf(t reflect.Type) *Annotation {
	return &Annotation{Type: t}
}

var errorType = reflect.TypeFor[error]()

// FromFunc builds a Function from a Go value. Name and QualName come from the runtime
// symbol, so c.Add, (*Calculator).Add and Calculator.Add all resolve to
// "Calculator.Add". Returns is the single non-error result, if any.
// fn may also be a non-func value, in which case only TypeName is set.
func FromFunc(fn any, doc string, params ...Param) (Function, error) {
	f := Function{Doc: doc, Params: params}
	if fn == nil {
		return f, &ValidationError{Err: ErrMissingName}
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	f.TypeName = t.Name()
	if t.Kind() != reflect.Func {
		return f, nil
	}
	if !v.IsNil() {
		if rf := runtime.FuncForPC(v.Pointer()); rf != nil {
			f.QualName = qualifiedName(rf.Name())
			f.Name = simpleName(f.QualName)
		}
	}
	var results []reflect.Type
	for i := range t.NumOut() {
		results = append(results, t.Out(i))
	}
	if n := len(results); n > 0 && results[n-1] == errorType {
		results = results[:n-1]
	}
	switch len(results) {
	case 0:
	case 1:
		f.Returns = results[0]
	default:
		return f, &ValidationError{Function: f.displayName(), Err: ErrBadReturn}
	}
	return f, nil
}

// qualifiedName strips the import path and package name from a runtime symbol and
// normalizes method receivers: "example.com/pkg.(*T).M-fm" → "T.M".
func qualifiedName(symbol string) string {
	if i := strings.LastIndexByte(symbol, '/'); i >= 0 {
		symbol = symbol[i+1:]
	}
	if i := strings.IndexByte(symbol, '.'); i >= 0 {
		symbol = symbol[i+1:]
	}
	symbol = strings.TrimSuffix(symbol, "-fm")
	symbol = strings.ReplaceAll(symbol, "(*", "")
	symbol = strings.ReplaceAll(symbol, ")", "")
	// generic instantiations: "Map[...]"
	if i := strings.IndexByte(symbol, '['); i >= 0 {
		if j := strings.LastIndexByte(symbol, ']'); j > i {
			symbol = symbol[:i] + symbol[j+1:]
		}
	}
	return symbol
}

func simpleName(qualName string) string {
	if i := strings.LastIndexByte(qualName, '.'); i >= 0 {
		return qualName[i+1:]
	}
	return qualName
}

// displayName identifies the callable in error messages.
func (f Function) displayName() string {
	switch {
	case f.QualName != "":
		return f.QualName
	case f.Name != "":
		return f.Name
	default:
		return f.TypeName
	}
}
