// Package testutil provides fixture callables and descriptors for tooldef tests.
package testutil

import (
	"fmt"
	"strings"

	"github.com/skosovsky/tooldef"
)

// Calculator has methods with pointer and value receivers.
type Calculator struct {
	Precision int
}

// Add adds two integers.
func (c *Calculator) Add(a, b int) string {
	return fmt.Sprint(a + b)
}

// Scale multiplies x by factor.
func (c Calculator) Scale(x, factor float64) string {
	return fmt.Sprintf("%.*f", c.Precision, x*factor)
}

// Thermostat has an Add method too, to exercise qualified name mapping.
type Thermostat struct{}

// Add raises the target temperature.
func (t *Thermostat) Add(delta int) string {
	return fmt.Sprint(delta)
}

// Greet builds a greeting.
func Greet(name string, excited bool) string {
	if excited {
		return "Hello, " + name + "!"
	}
	return "Hello, " + name
}

// Count returns a non-string result and is rejected by Generate.
func Count(items string) int {
	return len(strings.Fields(items))
}

// Echo returns its input and an error, which FromFunc ignores.
func Echo(text string) (string, error) {
	return text, nil
}

// Greeter is a callable value without a function name.
type Greeter struct{}

// Call greets name.
func (Greeter) Call(name string) string { return Greet(name, false) }

// AddDoc is the doc text used for Add descriptors.
const AddDoc = "Add two numbers.\nThe result is returned as text."

// AddParams declares the parameters of Calculator.Add. When receiver is true a
// leading self parameter is declared, as for the method expression (*Calculator).Add.
func AddParams(receiver bool) []tooldef.Param {
	var params []tooldef.Param
	if receiver {
		params = append(params, tooldef.Untyped("self"))
	}
	return append(params,
		tooldef.Arg("a", tooldef.Annotate[int]("first operand")),
		tooldef.Arg("b", tooldef.Annotate[int]("second operand")).WithDefault(0),
	)
}

// MustFromFunc is tooldef.FromFunc that panics on error.
func MustFromFunc(fn any, doc string, params ...tooldef.Param) tooldef.Function {
	f, err := tooldef.FromFunc(fn, doc, params...)
	if err != nil {
		panic(err)
	}
	return f
}

// Descriptors returns valid strict-mode descriptors for Calculator.Add (bound),
// Calculator.Scale and Greet, in that order.
func Descriptors() []tooldef.Function {
	c := &Calculator{Precision: 2}
	return []tooldef.Function{
		MustFromFunc(c.Add, AddDoc, AddParams(false)...),
		MustFromFunc(Calculator.Scale, "Scale a number.",
			tooldef.Untyped("cls"),
			tooldef.Arg("x", tooldef.Annotate[float64]("value to scale")),
			tooldef.Arg("factor", tooldef.Annotate[float64]("multiplier")).WithDefault(2.5),
		),
		MustFromFunc(Greet, "Greet someone.",
			tooldef.Arg("name", tooldef.Annotate[string]("who to greet")),
			tooldef.Arg("excited", tooldef.Annotate[bool]("add an exclamation mark")).WithDefault(false),
		),
	}
}
