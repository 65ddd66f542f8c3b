package logic

// Subst is a finite mapping from variables to terms. A substitution is
// only ever extended by binding a not-yet-bound variable, and extension
// copies: a failed unification attempt leaves the caller's substitution
// untouched.
type Subst map[Symbol]Term

// Apply replaces every bound variable in t by its binding, chasing chains
// until a constant, an unbound variable, or a function term is reached.
// The chase terminates because the occurs check forbids binding cycles.
func (s Subst) Apply(t Term) Term {
	switch v := t.(type) {
	case Symbol:
		if bound, ok := s[v]; ok {
			return s.Apply(bound)
		}
		return v
	case Function:
		args := make([]Term, len(v.Args))
		for i, arg := range v.Args {
			args[i] = s.Apply(arg)
		}
		return Function{Name: v.Name, Args: args}
	}
	return t
}

// bind returns a copy of s extended with v -> t.
func (s Subst) bind(v Symbol, t Term) Subst {
	next := make(Subst, len(s)+1)
	for k, val := range s {
		next[k] = val
	}
	next[v] = t
	return next
}
