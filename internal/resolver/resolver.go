// Package resolver performs a static pass over the AST between parsing
// and interpretation: for every name-bearing expression it records how
// many environment frames out the interpreter must walk to find the
// binding, so the interpreter never has to search the environment chain
// at runtime. It also catches scoping mistakes that would otherwise only
// surface as confusing runtime behavior: reading a local variable from
// its own initializer, declaring the same name twice in one scope,
// returning from top-level code, and misusing "this"/"super" outside a
// class.
//
// The resolver never executes code. Scope lookups key off the AST node's
// pointer identity, which is stable because the parser allocates each
// node exactly once.
package resolver

import (
	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Depths maps a Variable/Assign/This/Super expression to the number of
// enclosing environments to skip. An absent entry means "global".
type Depths map[ast.Expr]int

// Resolver walks a parsed program and builds a Depths table.
type Resolver struct {
	reporter *diag.Reporter
	scopes   []map[string]bool
	locals   Depths

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that reports static errors through r.
func New(r *diag.Reporter) *Resolver {
	return &Resolver{reporter: r, locals: make(Depths)}
}

// Resolve runs the pass over statements and returns the scope-depth table.
func (r *Resolver) Resolve(statements []ast.Stmt) Depths {
	r.resolveStmts(statements)
	return r.locals
}

// --- scope stack -------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.reportError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any local scope: left unresolved, treated as global.
}

func (r *Resolver) reportError(tok token.Token, message string) {
	r.reporter.Static(tok.Line, diag.AtToken(tok.Lexeme, tok.Kind == token.EOF), "%s", message)
}
