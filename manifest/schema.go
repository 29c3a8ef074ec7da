package manifest

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

var nodeType = reflect.TypeFor[yaml.Node]()

// Schema returns the JSON Schema of the manifest format, for editor completion and CI checks.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:              "yaml",
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == nodeType {
				// any YAML value
				return &jsonschema.Schema{}
			}
			return nil
		},
	}
	s := r.Reflect(&Manifest{})
	s.Title = "tooldef manifest"
	s.Description = "Callable descriptors converted to LLM tool definitions"
	names := TypeNames()
	enum := make([]any, len(names))
	for i, n := range names {
		enum[i] = n
	}
	if fns, ok := s.Properties.Get("functions"); ok && fns.Items != nil {
		if returns, ok := fns.Items.Properties.Get("returns"); ok {
			returns.Enum = enum
		}
		if params, ok := fns.Items.Properties.Get("params"); ok && params.Items != nil {
			if typ, ok := params.Items.Properties.Get("type"); ok {
				typ.Enum = enum
			}
		}
	}
	return s
}
