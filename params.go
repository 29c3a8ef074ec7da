package tooldef

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ParamsOf derives parameters from the fields of argument struct T, in field order.
//
// Tags: `json` names the parameter (fields tagged "-" and unexported fields are skipped),
// `description` makes the annotation qualified (otherwise it is bare), and `default`
// declares a default value parsed according to the field kind.
//
//	type AddArgs struct {
//	    A int `json:"a" description:"first operand"`
//	    B int `json:"b" description:"second operand" default:"0"`
//	}
func ParamsOf[T any]() ([]Param, error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("tooldef: ParamsOf needs a struct type, got %s", typ)
	}
	params := make([]Param, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		p := Param{Name: name, Annotation: TypeOf(field.Type)}
		if desc, ok := field.Tag.Lookup("description"); ok {
			p.Annotation = Described(field.Type, desc)
		}
		if raw, ok := field.Tag.Lookup("default"); ok {
			v, err := parseDefault(field.Type, raw)
			if err != nil {
				return nil, fmt.Errorf("tooldef: field %s: default %q: %w", field.Name, raw, err)
			}
			p = p.WithDefault(v)
		}
		params = append(params, p)
	}
	return params, nil
}

// parseDefault converts a `default` tag to a value of type t.
func parseDefault(t reflect.Type, raw string) (any, error) {
	var (
		v   any
		err error
	)
	switch t.Kind() {
	case reflect.String:
		v = raw
	case reflect.Bool:
		v, err = strconv.ParseBool(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		n, err = strconv.ParseInt(raw, 10, t.Bits())
		v = n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		n, err = strconv.ParseUint(raw, 10, t.Bits())
		v = n
	case reflect.Float32, reflect.Float64:
		var f float64
		f, err = strconv.ParseFloat(raw, t.Bits())
		v = f
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(v).Convert(t).Interface(), nil
}
