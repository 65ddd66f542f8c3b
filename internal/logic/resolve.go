package logic

// Resolve produces every resolvent of a and b. For each pair of literals
// with the same predicate name and opposite polarity whose argument lists
// unify, the resolvent is the set union of the remaining literals of both
// clauses under the unifying substitution. Each candidate pair is tried
// from a fresh empty substitution; bindings never leak between pairs. An
// empty resolvent signals a derived contradiction.
func Resolve(a, b Clause) []Clause {
	var resolvents []Clause
	for _, p := range a.Literals {
		for _, q := range b.Literals {
			if p.Name != q.Name || p.Negated == q.Negated {
				continue
			}
			s, ok := UnifyArgs(p.Args, q.Args, Subst{})
			if !ok {
				continue
			}
			rest := make([]Literal, 0, len(a.Literals)+len(b.Literals)-2)
			for _, l := range a.Literals {
				if l.Equal(p) {
					continue
				}
				rest = append(rest, l.Apply(s))
			}
			for _, l := range b.Literals {
				if l.Equal(q) {
					continue
				}
				rest = append(rest, l.Apply(s))
			}
			resolvents = append(resolvents, NewClause(rest))
		}
	}
	return resolvents
}
