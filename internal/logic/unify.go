package logic

// Unify computes a most general extension of s making x and y
// syntactically identical. Failure is reported as (nil, false); it is a
// normal negative result, not an error.
func Unify(x, y Term, s Subst) (Subst, bool) {
	if Equal(x, y) {
		return s, true
	}
	if v, ok := x.(Symbol); ok && v.IsVariable() {
		return unifyVar(v, y, s)
	}
	if v, ok := y.(Symbol); ok && v.IsVariable() {
		return unifyVar(v, x, s)
	}
	fx, okx := x.(Function)
	fy, oky := y.(Function)
	if okx && oky {
		if fx.Name != fy.Name || len(fx.Args) != len(fy.Args) {
			return nil, false
		}
		return UnifyArgs(fx.Args, fy.Args, s)
	}
	return nil, false
}

// UnifyArgs unifies two argument lists pairwise, left to right, threading
// the substitution through each pair and failing fast.
func UnifyArgs(xs, ys []Term, s Subst) (Subst, bool) {
	if len(xs) != len(ys) {
		return nil, false
	}
	ok := true
	for i := range xs {
		if s, ok = Unify(xs[i], ys[i], s); !ok {
			return nil, false
		}
	}
	return s, true
}

func unifyVar(v Symbol, x Term, s Subst) (Subst, bool) {
	// Chase one level: if either side is already bound, unify through the
	// binding instead. Full chain resolution happens in Subst.Apply.
	if bound, ok := s[v]; ok {
		return Unify(bound, x, s)
	}
	if sym, ok := x.(Symbol); ok {
		if bound, ok := s[sym]; ok {
			return Unify(v, bound, s)
		}
	}
	if occurs(v, x, s) {
		return nil, false
	}
	return s.bind(v, x), true
}

// occurs reports whether v occurs in x, directly or after chasing
// bindings in s. Binding a variable to a term containing itself would
// construct an infinite term.
func occurs(v Symbol, x Term, s Subst) bool {
	switch t := x.(type) {
	case Symbol:
		if t == v {
			return true
		}
		if bound, ok := s[t]; ok {
			return occurs(v, bound, s)
		}
	case Function:
		for _, arg := range t.Args {
			if occurs(v, arg, s) {
				return true
			}
		}
	}
	return false
}
