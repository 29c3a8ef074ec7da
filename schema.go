package tooldef

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// formatDefault renders a default value in Go syntax: 5, 2.5, 1.0, true, "abc", nil.
func formatDefault(v any) string {
	if v == nil {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprint(v)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return "nil"
		}
	}
	return fmt.Sprintf("%#v", v)
}

// formatFloat keeps a fraction marker on whole values (1.0, not 1) so they do not read as integers.
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

// Schema converts p to an invopop JSON Schema, for SDK glue that takes *jsonschema.Schema
// or its ordered Properties. Empty descriptions are dropped by that type's encoding.
func (p Parameters) Schema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       p.Type,
		Properties: jsonschema.NewProperties(),
		Required:   append([]string(nil), p.Required...),
	}
	if p.Properties == nil {
		return s
	}
	for pair := p.Properties.Oldest(); pair != nil; pair = pair.Next() {
		s.Properties.Set(pair.Key, &jsonschema.Schema{
			Type:        pair.Value.Type,
			Description: pair.Value.Description,
		})
	}
	return s
}

// Check compiles the parameters schema of every definition and returns the first one
// that is not a valid JSON Schema (e.g. a custom type map yielding unknown type names).
// It checks the generated documents only, never call arguments.
func Check(defs ...Definition) error {
	for i, def := range defs {
		if err := compileParameters(def.Function.Parameters, i, def.Function.Name); err != nil {
			return fmt.Errorf("tooldef: %s: invalid parameters schema: %w", def.Function.Name, err)
		}
	}
	return nil
}

func compileParameters(p Parameters, index int, name string) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	doc, err := sjsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	loc := fmt.Sprintf("https://tooldef.invalid/%d/%s.json", index, url.PathEscape(name))
	c := sjsonschema.NewCompiler()
	if err := c.AddResource(loc, doc); err != nil {
		return err
	}
	_, err = c.Compile(loc)
	return err
}
