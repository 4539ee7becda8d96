package cmd

import (
	"os"

	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/interp"
)

func newInterpreter(reporter *diag.Reporter) *interp.Interpreter {
	return interp.New(os.Stdout, reporter)
}
