package domain

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	// RunStatusFinished means the loop reached a verdict: saturation or a
	// derived contradiction.
	RunStatusFinished RunStatus = "finished"
	// RunStatusInconclusive means the configured round bound tripped
	// before a verdict.
	RunStatusInconclusive RunStatus = "inconclusive"
)

// Run records one saturation run over a theory. Verdict is "yes"
// (saturated, no contradiction derivable) or "no" (unsatisfiable) and is
// empty for inconclusive runs.
type Run struct {
	ID          uuid.UUID `json:"id"`
	TheoryID    uuid.UUID `json:"theory_id"`
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	Status      RunStatus `json:"status"`
	Verdict     string    `json:"verdict,omitempty"`
	Rounds      int       `json:"rounds"`
	Derived     int       `json:"derived_clauses"`
	MaxRounds   int       `json:"max_rounds,omitempty"`
	DurationMs  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}
