package logic

import (
	"sort"
	"strings"
)

// Clause is a disjunction of literals with set semantics: NewClause drops
// duplicate literals and orders the rest canonically, so two clauses built
// from the same literals in any order and multiplicity are equal. A clause
// with zero literals is the empty clause, the contradiction a refutation
// searches for.
type Clause struct {
	Literals []Literal
}

// NewClause builds a clause from a literal list, collapsing duplicates and
// sorting by canonical key.
func NewClause(literals []Literal) Clause {
	seen := make(map[string]struct{}, len(literals))
	unique := make([]Literal, 0, len(literals))
	for _, l := range literals {
		key := l.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, l)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].String() < unique[j].String()
	})
	return Clause{Literals: unique}
}

// IsEmpty reports whether this is the empty clause.
func (c Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// Key is the canonical form used for knowledge-base deduplication. It is
// also a valid clause line in the source syntax.
func (c Clause) Key() string {
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

func (c Clause) String() string {
	if c.IsEmpty() {
		return "<empty>"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " | ")
}

// Equal reports set equality of the two clauses' literals.
func (c Clause) Equal(d Clause) bool {
	return c.Key() == d.Key()
}
