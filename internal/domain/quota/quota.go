package quota

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VideoQuota is one row per team: the video minutes consumed so far.
// The plan cap lives on the team record, not here.
type VideoQuota struct {
	TeamID      uuid.UUID `json:"team_id"`
	MinutesUsed int       `json:"minutes_used"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Ledger mutations must be atomic at the storage layer (single UPDATE with
// arithmetic in SQL), never read-modify-write in application code.
type Ledger interface {
	Get(ctx context.Context, teamID uuid.UUID) (*VideoQuota, error)
	// Add increments consumption by minutes. minutes must be >= 0; 0 is a no-op.
	Add(ctx context.Context, teamID uuid.UUID, minutes int) error
	// Subtract decrements consumption, floored at zero.
	Subtract(ctx context.Context, teamID uuid.UUID, minutes int) error
}

// PlanResolver supplies the plan-defined minutes cap for a team.
type PlanResolver interface {
	VideoMinutesCap(ctx context.Context, teamID uuid.UUID) (int, error)
}

// MinutesForSeconds converts a duration in whole seconds to billable minutes
// with round-half-up semantics. Charge and refund both go through this
// function so a charge followed by a refund of the same duration nets to zero.
func MinutesForSeconds(seconds int) int {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 30) / 60
}
