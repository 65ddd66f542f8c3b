package logic

import "strings"

// Literal is an atomic predicate application, possibly negated. A literal
// with no arguments is a propositional atom. Two literals with the same
// name and arguments but opposite polarity are distinct values; they are
// exactly the pairs the resolution rule acts on.
type Literal struct {
	Name    string
	Args    []Term
	Negated bool
}

func (l Literal) String() string {
	var b strings.Builder
	if l.Negated {
		b.WriteByte('!')
	}
	b.WriteString(l.Name)
	if len(l.Args) > 0 {
		b.WriteByte('(')
		for i, arg := range l.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(arg.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Equal reports structural equality over name, arguments and polarity.
func (l Literal) Equal(m Literal) bool {
	if l.Name != m.Name || l.Negated != m.Negated || len(l.Args) != len(m.Args) {
		return false
	}
	for i := range l.Args {
		if !Equal(l.Args[i], m.Args[i]) {
			return false
		}
	}
	return true
}

// Apply returns a copy of the literal with the substitution applied to
// every argument. Name and polarity are unchanged.
func (l Literal) Apply(s Subst) Literal {
	if len(l.Args) == 0 {
		return l
	}
	args := make([]Term, len(l.Args))
	for i, arg := range l.Args {
		args[i] = s.Apply(arg)
	}
	return Literal{Name: l.Name, Args: args, Negated: l.Negated}
}
