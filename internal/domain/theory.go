package domain

import (
	"time"

	"github.com/google/uuid"
)

// Theory is a stored knowledge base: the raw CNF source text plus the
// clause count recorded when the source was validated at creation time.
type Theory struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	ClauseCount int       `json:"clause_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
