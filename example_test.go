package tooldef_test

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skosovsky/tooldef"
	"github.com/skosovsky/tooldef/testutil"
)

func ExampleGenerator_Generate() {
	c := &testutil.Calculator{}
	add, err := tooldef.FromFunc(c.Add, testutil.AddDoc, testutil.AddParams(false)...)
	if err != nil {
		fmt.Println(err)
		return
	}
	defs, err := tooldef.New(tooldef.WithNameMappings(tooldef.NameMapping{From: "Calculator.Add", To: "calc_add"})).Generate(add)
	if err != nil {
		fmt.Println(err)
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(defs)
	// Output:
	// [
	//   {
	//     "type": "function",
	//     "function": {
	//       "name": "calc_add",
	//       "description": "Add two numbers.",
	//       "parameters": {
	//         "type": "object",
	//         "properties": {
	//           "a": {
	//             "type": "integer",
	//             "description": "first operand"
	//           },
	//           "b": {
	//             "type": "integer",
	//             "description": "second operand (default: 0)"
	//           }
	//         },
	//         "required": [
	//           "a"
	//         ]
	//       }
	//     }
	//   }
	// ]
}

func ExampleGenerator_Generate_permissive() {
	fn, _ := tooldef.FromFunc(testutil.Greet, "", tooldef.Untyped("name"), tooldef.Arg("excited", tooldef.Bare[bool]()))
	if _, err := tooldef.New().Generate(fn); err != nil {
		fmt.Println(err)
	}
	defs, _ := tooldef.New(tooldef.WithStrict(false)).Generate(fn)
	p := defs[0].Function.Parameters
	for _, name := range p.Names() {
		prop, _ := p.Property(name)
		fmt.Printf("%s: %s %q\n", name, prop.Type, prop.Description)
	}
	// Output:
	// tooldef: Greet: validation failed: docstring missing
	// name: string ""
	// excited: boolean ""
}

func ExampleParamsOf() {
	type SearchArgs struct {
		Query string `json:"query" description:"Search terms"`
		Limit int    `json:"limit" description:"Maximum results" default:"10"`
	}
	params, err := tooldef.ParamsOf[SearchArgs]()
	if err != nil {
		fmt.Println(err)
		return
	}
	def, err := tooldef.New().Introspect(tooldef.Function{Name: "search", Doc: "Search the index.", Params: params})
	if err != nil {
		fmt.Println(err)
		return
	}
	limit, _ := def.Parameters.Property("limit")
	fmt.Println(def.Parameters.Required, limit.Description)
	// Output:
	// [query] Maximum results (default: 10)
}
