// journal/journal.go
package journal

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rustyeddy/sizer/risk"
)

// PlanRecord is one saved sizing plan: the inputs as the user entered
// them plus every computed figure. Records are written only on explicit
// request; the journal never sees unsaved form state.
type PlanRecord struct {
	PlanID string
	Time   time.Time
	Symbol string
	Input  risk.Snapshot
	Plan   risk.Plan
}

// NewRecord stamps a plan with a ULID and the current time.
//
// ULIDs sort lexicographically by generation time, so plan IDs double
// as a chronological index.
func NewRecord(in risk.Snapshot, p risk.Plan) PlanRecord {
	return PlanRecord{
		PlanID: ulid.Make().String(),
		Time:   time.Now().UTC(),
		Symbol: in.Symbol,
		Input:  in,
		Plan:   p,
	}
}

type Journal interface {
	RecordPlan(PlanRecord) error
	Close() error
}
