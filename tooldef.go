package tooldef

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// KindFunction marks a Definition as a function tool.
const KindFunction = "function"

// SchemaObject is the JSON Schema type of every Parameters record.
const SchemaObject = "object"

// Definition is one entry of the tools array sent to a function-calling API.
// It is provider-agnostic; the JSON form matches the common {"type":"function"} envelope.
type Definition struct {
	Kind     string      `json:"type"`
	Function FunctionDef `json:"function"`
}

// FunctionDef describes a single callable: public name, one-line description and arguments.
type FunctionDef struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
}

// Parameters is a JSON Schema "object" with ordered properties.
// Properties and Required keep the declaration order of the callable's parameters.
type Parameters struct {
	Type       string                                  `json:"type"`
	Properties *orderedmap.OrderedMap[string, Property] `json:"properties"`
	Required   []string                                `json:"required"`
}

// Property is the schema of a single parameter. Description is always serialized,
// even when empty.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

func newParameters() Parameters {
	return Parameters{
		Type:       SchemaObject,
		Properties: orderedmap.New[string, Property](),
		Required:   []string{},
	}
}

// Names returns the property names in declaration order.
func (p Parameters) Names() []string {
	if p.Properties == nil {
		return nil
	}
	names := make([]string, 0, p.Properties.Len())
	for pair := p.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Property returns the schema of the named parameter.
func (p Parameters) Property(name string) (Property, bool) {
	if p.Properties == nil {
		return Property{}, false
	}
	return p.Properties.Get(name)
}
