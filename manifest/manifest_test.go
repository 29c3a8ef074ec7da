package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/skosovsky/tooldef"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const calculatorManifest = `
functions:
  - name: add
    qualname: Calculator.add
    doc: |
      Add two numbers.
      The result is text.
    returns: string
    params:
      - name: self
      - name: a
        type: int
        description: first operand
      - name: b
        type: int
        description: second operand
        default: 0
  - name: greet
    doc: Greet someone.
    params:
      - name: name
        type: string
        description: who to greet
      - name: title
        type: string
        description: honorific
        default: null
      - name: loud
        type: bool
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_Functions(t *testing.T) {
	m, err := Parse([]byte(calculatorManifest))
	require.NoError(t, err)
	require.Len(t, m.Functions, 2)

	fns, err := m.Descriptors()
	require.NoError(t, err)
	require.Len(t, fns, 2)

	add := fns[0]
	assert.Equal(t, "add", add.Name)
	assert.Equal(t, "Calculator.add", add.QualName)
	assert.Equal(t, reflect.TypeFor[string](), add.Returns)
	require.Len(t, add.Params, 3)
	assert.Nil(t, add.Params[0].Annotation)
	assert.True(t, add.Params[1].Annotation.Qualified)
	assert.Equal(t, "first operand", add.Params[1].Annotation.Description)
	assert.False(t, add.Params[1].HasDefault)
	assert.True(t, add.Params[2].HasDefault)
	assert.Equal(t, 0, add.Params[2].Default)

	greet := fns[1]
	assert.Nil(t, greet.Returns)
	assert.True(t, greet.Params[1].HasDefault, "explicit null is a default")
	assert.Nil(t, greet.Params[1].Default)
	assert.False(t, greet.Params[2].Annotation.Qualified)
}

func TestParse_Generate(t *testing.T) {
	m, err := Parse([]byte(calculatorManifest))
	require.NoError(t, err)
	fns, err := m.Descriptors()
	require.NoError(t, err)

	_, err = tooldef.New().Generate(fns...)
	require.ErrorIs(t, err, tooldef.ErrMissingDescription)

	defs, err := tooldef.New(tooldef.WithStrict(false)).Generate(fns...)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "Add two numbers.", defs[0].Function.Description)
	assert.Equal(t, []string{"a"}, defs[0].Function.Parameters.Required)
	title, _ := defs[1].Function.Parameters.Property("title")
	assert.Equal(t, "honorific (default: nil)", title.Description)
	assert.Equal(t, []string{"name", "loud"}, defs[1].Function.Parameters.Required)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "functions: ["},
		{"unknown param type", "functions:\n  - name: f\n    params:\n      - name: x\n        type: complex128\n"},
		{"unknown return type", "functions:\n  - name: f\n    returns: list\n"},
		{"param without name", "functions:\n  - name: f\n    params:\n      - type: int\n"},
		{"duplicate param", "functions:\n  - name: f\n    params:\n      - name: a\n      - name: a\n        type: int\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestDescriptors_DescriptionWithoutType(t *testing.T) {
	m, err := Parse([]byte("functions:\n  - name: f\n    params:\n      - name: x\n        description: lonely\n"))
	require.NoError(t, err)
	_, err = m.Descriptors()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `param "x"`)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "tools.yaml", calculatorManifest)
	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Functions, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, []string{"bool", "float32", "float64", "int", "int64", "string"}, TypeNames())
	assert.True(t, HasType("int"))
	assert.False(t, HasType("uint"))
}

func TestSchema(t *testing.T) {
	s := Schema()
	require.NotNil(t, s)
	data, err := json.Marshal(s)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "tooldef manifest", doc["title"])
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "functions")
	assert.Contains(t, string(data), `"qualname"`)
	assert.Contains(t, string(data), `"float64"`)
}

func TestSchema_ParamDefaultAcceptsAnyValue(t *testing.T) {
	s := Schema()
	fns, ok := s.Properties.Get("functions")
	require.True(t, ok)
	params, ok := fns.Items.Properties.Get("params")
	require.True(t, ok)
	def, ok := params.Items.Properties.Get("default")
	require.True(t, ok, "default is named from the yaml tag")
	assert.Empty(t, def.Type)
	assert.Nil(t, def.Enum)
}
