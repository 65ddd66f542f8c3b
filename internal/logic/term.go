// Package logic implements a resolution refutation engine for first-order
// clauses: terms, literals, clauses with set semantics, syntactic
// unification with occurs check, and a saturation loop that resolves
// clause pairs to fixpoint or contradiction.
package logic

import (
	"strings"
	"unicode"
)

// Term is a first-order term: either a Symbol (a variable or a constant)
// or a Function application over an ordered argument list.
type Term interface {
	// String renders the term in the knowledge-base source syntax. Two
	// terms are structurally equal exactly when their strings are equal,
	// so String doubles as the canonical key for hashing.
	String() string
}

// Symbol is a non-compound term. Whether a symbol is a variable or a
// constant follows the source format's lexical convention: an identifier
// starting with a lowercase letter is a variable, one starting with an
// uppercase letter is a constant. The convention is part of the .cnf file
// contract and is not encoded as a separate tag.
type Symbol struct {
	Name string
}

func (s Symbol) IsVariable() bool {
	for _, r := range s.Name {
		return unicode.IsLower(r)
	}
	return false
}

func (s Symbol) IsConstant() bool {
	for _, r := range s.Name {
		return unicode.IsUpper(r)
	}
	return false
}

func (s Symbol) String() string { return s.Name }

// Function is a compound term.
type Function struct {
	Name string
	Args []Term
}

func (f Function) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports structural equality of two terms: same name and
// recursively equal argument lists.
func Equal(x, y Term) bool {
	switch a := x.(type) {
	case Symbol:
		b, ok := y.(Symbol)
		return ok && a.Name == b.Name
	case Function:
		b, ok := y.(Function)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
