package logic

import (
	"context"
	"errors"
)

// Verdict is the outcome of a saturation run, in the source format's
// vocabulary: "no" when the empty clause was derived (the clause set is
// unsatisfiable), "yes" when the set saturated without a contradiction.
type Verdict string

const (
	VerdictSaturated     Verdict = "yes"
	VerdictContradiction Verdict = "no"
)

// ErrInconclusive is returned when Options.MaxRounds is exhausted before
// the loop reaches a verdict.
var ErrInconclusive = errors.New("round limit reached before saturation")

// Options configures a saturation run.
type Options struct {
	// MaxRounds bounds the number of saturation rounds. Zero means run to
	// fixpoint or contradiction with no bound.
	MaxRounds int
}

// Result carries the verdict of a completed run plus its bookkeeping. On
// ErrInconclusive the counters are still populated; the verdict is empty.
type Result struct {
	Verdict Verdict
	// Rounds is the number of rounds entered, including the one that
	// terminated the run.
	Rounds int
	// Derived is the count of clauses added beyond the deduplicated input
	// set.
	Derived int
}

// Saturate drives the resolution rule over the knowledge base until the
// empty clause appears, no round produces a new clause, ctx is done, or
// the round bound is hit.
//
// Each round enumerates unordered pairs of distinct indices over a
// snapshot of the clause list, so clauses derived during a round are first
// paired in the next round and a clause is never resolved against itself.
// Derived clauses are deduplicated by structural clause equality: a
// resolvent already present is not recorded and does not keep the loop
// alive. The knowledge base is owned by this call and discarded on return.
func Saturate(ctx context.Context, clauses []Clause, opts Options) (Result, error) {
	working := make([]Clause, 0, len(clauses))
	derived := make(map[string]struct{}, len(clauses))
	for _, c := range clauses {
		key := c.Key()
		if _, dup := derived[key]; dup {
			continue
		}
		derived[key] = struct{}{}
		working = append(working, c)
	}
	initial := len(working)

	res := Result{}
	for {
		if err := ctx.Err(); err != nil {
			res.Derived = len(derived) - initial
			return res, err
		}
		if opts.MaxRounds > 0 && res.Rounds >= opts.MaxRounds {
			res.Derived = len(derived) - initial
			return res, ErrInconclusive
		}
		res.Rounds++

		var fresh []Clause
		n := len(working)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for _, r := range Resolve(working[i], working[j]) {
					if r.IsEmpty() {
						res.Verdict = VerdictContradiction
						res.Derived = len(derived) - initial
						return res, nil
					}
					key := r.Key()
					if _, seen := derived[key]; seen {
						continue
					}
					derived[key] = struct{}{}
					fresh = append(fresh, r)
				}
			}
		}
		if len(fresh) == 0 {
			res.Verdict = VerdictSaturated
			res.Derived = len(derived) - initial
			return res, nil
		}
		working = append(working, fresh...)
	}
}
