// Command tooldef converts manifest files into LLM tool definitions.
//
//	tooldef generate -c tooldef.yaml tools.yaml > tools.json
//	tooldef list tools.yaml
//	tooldef schema > manifest.schema.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
