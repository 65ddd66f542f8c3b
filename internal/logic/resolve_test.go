package logic

import "testing"

func TestResolve_ComplementaryPairYieldsEmptyClause(t *testing.T) {
	a := NewClause([]Literal{lit("P", false, sym("x"))})
	b := NewClause([]Literal{lit("P", true, sym("A"))})

	resolvents := Resolve(a, b)
	if len(resolvents) != 1 {
		t.Fatalf("expected 1 resolvent, got %d", len(resolvents))
	}
	if !resolvents[0].IsEmpty() {
		t.Fatalf("expected empty clause, got %v", resolvents[0])
	}
}

func TestResolve_SubstitutionAppliedToRemainder(t *testing.T) {
	// {!P(x), Q(x)} with {P(A)} resolves to {Q(A)}.
	a := NewClause([]Literal{lit("P", true, sym("x")), lit("Q", false, sym("x"))})
	b := NewClause([]Literal{lit("P", false, sym("A"))})

	resolvents := Resolve(a, b)
	if len(resolvents) != 1 {
		t.Fatalf("expected 1 resolvent, got %d", len(resolvents))
	}
	want := NewClause([]Literal{lit("Q", false, sym("A"))})
	if !resolvents[0].Equal(want) {
		t.Fatalf("expected %v, got %v", want, resolvents[0])
	}
}

func TestResolve_SamePolarityDoesNotResolve(t *testing.T) {
	a := NewClause([]Literal{lit("P", false, sym("A"))})
	b := NewClause([]Literal{lit("P", false, sym("B"))})
	if got := Resolve(a, b); len(got) != 0 {
		t.Fatalf("expected no resolvents, got %v", got)
	}
}

func TestResolve_NameMismatchDoesNotResolve(t *testing.T) {
	a := NewClause([]Literal{lit("P", false, sym("A"))})
	b := NewClause([]Literal{lit("Q", true, sym("A"))})
	if got := Resolve(a, b); len(got) != 0 {
		t.Fatalf("expected no resolvents, got %v", got)
	}
}

func TestResolve_UnificationFailureSkipsPair(t *testing.T) {
	a := NewClause([]Literal{lit("P", false, sym("A"))})
	b := NewClause([]Literal{lit("P", true, sym("B"))})
	if got := Resolve(a, b); len(got) != 0 {
		t.Fatalf("expected no resolvents for non-unifying arguments, got %v", got)
	}
}

func TestResolve_MultipleComplementaryPairs(t *testing.T) {
	// Both P and Q can be resolved on, giving two distinct resolvents.
	a := NewClause([]Literal{lit("P", false, sym("A")), lit("Q", false, sym("B"))})
	b := NewClause([]Literal{lit("P", true, sym("A")), lit("Q", true, sym("B"))})

	resolvents := Resolve(a, b)
	if len(resolvents) != 2 {
		t.Fatalf("expected 2 resolvents, got %d: %v", len(resolvents), resolvents)
	}
}

func TestResolve_FreshSubstitutionPerPair(t *testing.T) {
	// Resolving on P binds x to A; resolving on Q binds x to B. The two
	// attempts must not share bindings.
	a := NewClause([]Literal{lit("P", false, sym("x")), lit("Q", false, sym("x"))})
	b := NewClause([]Literal{lit("P", true, sym("A")), lit("Q", true, sym("B"))})

	resolvents := Resolve(a, b)
	if len(resolvents) != 2 {
		t.Fatalf("expected 2 resolvents, got %d: %v", len(resolvents), resolvents)
	}
	wantP := NewClause([]Literal{lit("Q", false, sym("A")), lit("Q", true, sym("B"))})
	wantQ := NewClause([]Literal{lit("P", false, sym("B")), lit("P", true, sym("A"))})
	seen := map[string]bool{}
	for _, r := range resolvents {
		seen[r.Key()] = true
	}
	if !seen[wantP.Key()] || !seen[wantQ.Key()] {
		t.Fatalf("expected resolvents %v and %v, got %v", wantP, wantQ, resolvents)
	}
}

func TestResolve_ResolventDeduplicatesLiterals(t *testing.T) {
	// The surviving R(A) from both sides collapses to a single literal.
	a := NewClause([]Literal{lit("P", false, sym("A")), lit("R", false, sym("A"))})
	b := NewClause([]Literal{lit("P", true, sym("A")), lit("R", false, sym("A"))})

	resolvents := Resolve(a, b)
	if len(resolvents) != 1 {
		t.Fatalf("expected 1 resolvent, got %d", len(resolvents))
	}
	if len(resolvents[0].Literals) != 1 {
		t.Fatalf("expected deduplicated resolvent, got %v", resolvents[0])
	}
}

func TestResolve_PropositionalAtoms(t *testing.T) {
	a := NewClause([]Literal{lit("Rain", false)})
	b := NewClause([]Literal{lit("Rain", true)})
	resolvents := Resolve(a, b)
	if len(resolvents) != 1 || !resolvents[0].IsEmpty() {
		t.Fatalf("expected the empty clause, got %v", resolvents)
	}
}
