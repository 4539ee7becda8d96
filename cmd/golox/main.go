// Command golox is a tree-walking interpreter for Lox: run a script
// file, evaluate an inline expression, or drop into an interactive REPL.
package main

import "github.com/loxscript/golox/cmd/golox/cmd"

func main() {
	cmd.Execute()
}
