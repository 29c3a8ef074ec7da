// Package tooldef turns ordinary Go functions into tool definitions for LLM
// function-calling APIs.
//
// # Overview
//
// A function-calling API wants, per tool, a name, a one-line description and a JSON
// Schema "object" describing the arguments. Go cannot read parameter names or doc
// comments at runtime, so each callable is described by a Function descriptor: the
// identity comes from the Go value (FromFunc), the doc line and per-parameter
// annotations are declared next to it.
//
// Pipeline: Go function + doc + []Param → FromFunc → Function → Generator.Generate →
// []Definition (marshal to JSON and hand to the provider SDK).
//
// # Key concepts
//
//   - Annotations: a parameter is unannotated, annotated with a bare type marker
//     (Bare), or annotated with a type marker plus description (Annotate). Type markers
//     are reflect.Type values resolved through the generator's type map.
//   - Strictness: strict generators (the default) reject missing docs, annotations and
//     descriptions; permissive generators degrade them to "string" and "".
//   - Receivers: parameters named self or cls are never part of the schema, so bound
//     and unbound method descriptors produce the same definition.
//   - Name mapping: the qualified declaration path is looked up first, then the
//     resolved simple name is looked up again.
//
// # Example
//
//	add, err := tooldef.FromFunc(calc.Add, "Add two numbers.",
//	    tooldef.Arg("a", tooldef.Annotate[int]("first operand")),
//	    tooldef.Arg("b", tooldef.Annotate[int]("second operand")).WithDefault(0),
//	)
//	if err != nil { ... }
//	defs, err := tooldef.New(tooldef.WithStrict(true)).Generate(add)
//	if err != nil { ... }
//	body, _ := json.Marshal(defs)
package tooldef
