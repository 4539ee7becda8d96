package cmd

import (
	"fmt"
	"os"

	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/run"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

// rootCmd is a single bare command rather than a tree of cobra
// subcommands. The program's own invocation carries a three-way argv
// contract: zero arguments starts the REPL, one is a script path, two or
// more is a usage error exiting 64. Args enforces that directly instead
// of leaving it to cobra's default dispatch.
var rootCmd = &cobra.Command{
	Use:                   "golox [script]",
	Short:                 "A tree-walking interpreter for Lox",
	Args:                  validateArgs,
	DisableFlagsInUseLine: true,
	SilenceUsage:          true,
	SilenceErrors:         true,
	RunE:                  runGolox,
}

func init() {
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST to stderr before running")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "log each executed statement to stderr")
}

// validateArgs enforces the argv contract ahead of RunE, so the "two or
// more" case can print the exact usage line and exit 64 instead of
// cobra's own error formatting and exit 1.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [script]\n", cmd.Name())
		os.Exit(64)
	}
	return nil
}

// Execute runs the root command and maps its outcome to an exit code. A
// non-nil error here is a failure outside the four Lox error kinds (an
// unreadable script in runFile, a REPL that cannot start, or a bad
// flag), since those kinds exit directly from runSource. It gets its own generic failure code,
// sysexits.h's EX_NOINPUT, rather than colliding with 65 or 70.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(66)
	}
}

func runGolox(cmd *cobra.Command, args []string) error {
	opts := run.Options{DumpAST: dumpAST, Trace: trace}

	switch {
	case evalExpr != "":
		return runSource(evalExpr, opts)
	case len(args) == 1:
		return runFile(args[0], opts)
	default:
		return runPrompt(opts)
	}
}

func runFile(path string, opts run.Options) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return runSource(string(content), opts)
}

// runSource drives one file or -e expression through the pipeline and
// exits with the code assigned to whichever error kind fired.
func runSource(source string, opts run.Options) error {
	reporter := diag.NewReporter(os.Stderr)
	interpreter := newInterpreter(reporter)

	run.Source(source, interpreter, reporter, opts, os.Stderr)

	if reporter.HadError() {
		os.Exit(65)
	}
	if reporter.HadRuntimeError() {
		os.Exit(70)
	}
	return nil
}
