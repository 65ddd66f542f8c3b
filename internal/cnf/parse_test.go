package cnf

import (
	"strings"
	"testing"

	"github.com/prooflab/resolute/internal/logic"
)

func parseOne(t *testing.T, src string) []logic.Clause {
	t.Helper()
	clauses, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return clauses
}

func TestParse_BasicClauses(t *testing.T) {
	src := `Clauses:
P(A) !Q(x)
R
`
	clauses := parseOne(t, src)
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}
	if got := clauses[0].Key(); got != "!Q(x) P(A)" {
		t.Fatalf("unexpected first clause key: %q", got)
	}
	if got := clauses[1].Key(); got != "R" {
		t.Fatalf("unexpected second clause key: %q", got)
	}
}

func TestParse_IgnoresPreamble(t *testing.T) {
	src := `Some description of the problem.
Predicates: P Q

Clauses:
P(A)
`
	clauses := parseOne(t, src)
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
}

func TestParse_SkipsBlankLines(t *testing.T) {
	src := "Clauses:\n\nP(A)\n\n!P(B)\n"
	clauses := parseOne(t, src)
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}
}

func TestParse_NestedFunctionTerms(t *testing.T) {
	clauses := parseOne(t, "Clauses:\nP(f(g(x),A),y)\n")
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	lit := clauses[0].Literals[0]
	if lit.Name != "P" || len(lit.Args) != 2 {
		t.Fatalf("unexpected literal %v", lit)
	}
	f, ok := lit.Args[0].(logic.Function)
	if !ok || f.Name != "f" || len(f.Args) != 2 {
		t.Fatalf("expected function term f/2, got %v", lit.Args[0])
	}
	if _, ok := f.Args[0].(logic.Function); !ok {
		t.Fatalf("expected nested function term, got %v", f.Args[0])
	}
	if got := lit.String(); got != "P(f(g(x),A),y)" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestParse_NegationAndPropositionalAtoms(t *testing.T) {
	clauses := parseOne(t, "Clauses:\n!Rain Sun\n")
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	var sawNegated bool
	for _, l := range clauses[0].Literals {
		if len(l.Args) != 0 {
			t.Fatalf("expected propositional atom, got %v", l)
		}
		if l.Negated {
			sawNegated = true
		}
	}
	if !sawNegated {
		t.Fatal("expected a negated literal")
	}
}

func TestParse_VariableConstantConvention(t *testing.T) {
	clauses := parseOne(t, "Clauses:\nP(x,A)\n")
	args := clauses[0].Literals[0].Args
	v, ok := args[0].(logic.Symbol)
	if !ok || !v.IsVariable() {
		t.Fatalf("expected lowercase identifier to be a variable, got %v", args[0])
	}
	c, ok := args[1].(logic.Symbol)
	if !ok || !c.IsConstant() {
		t.Fatalf("expected uppercase identifier to be a constant, got %v", args[1])
	}
}

func TestParse_MalformedTerm(t *testing.T) {
	cases := []string{
		"Clauses:\nP(A\n",
		"Clauses:\nP(A))\n",
		"Clauses:\n(A)\n",
		"Clauses:\n!\n",
		"Clauses:\nP(1A)\n",
	}
	for _, src := range cases {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestParse_NoClausesSection(t *testing.T) {
	clauses := parseOne(t, "P(A)\nQ(B)\n")
	if len(clauses) != 0 {
		t.Fatalf("expected no clauses without a Clauses: section, got %d", len(clauses))
	}
}

func TestParseFile_Missing(t *testing.T) {
	if _, err := ParseFile("does-not-exist.cnf"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
