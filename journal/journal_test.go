package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/sizer/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() (risk.Snapshot, risk.Plan) {
	in := risk.Snapshot{
		MaxContracts: "1",
		MaxLoss:      "2500",
		DailyLossCap: "500",
		ProfitTarget: "3000",
		TradesToBust: "10",
		StopTicks:    "12",
		Symbol:       "ES",
	}
	plan, errs := risk.Calculate(in, map[string]float64{"ES": 12.50})
	if len(errs) > 0 {
		panic("sample snapshot must be valid")
	}
	return in, plan
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	in, plan := samplePlan()
	a := NewRecord(in, plan)
	b := NewRecord(in, plan)

	assert.Len(t, a.PlanID, 26)
	assert.NotEqual(t, a.PlanID, b.PlanID)
	assert.Equal(t, "ES", a.Symbol)
	assert.False(t, a.Time.IsZero())
}

func TestCSVJournal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plans.csv")
	in, plan := samplePlan()

	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.RecordPlan(NewRecord(in, plan)))
	require.NoError(t, j.Close())

	// Reopening must append, not rewrite the header.
	j, err = NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.RecordPlan(NewRecord(in, plan)))
	require.NoError(t, j.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two plans

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "ES", rows[1][2])
	assert.Equal(t, "250", rows[1][10]) // risk_per_trade
	assert.Equal(t, "1", rows[1][12])   // contracts
}

func TestSQLiteJournal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plans.db")
	in, plan := samplePlan()

	j, err := NewSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	first := NewRecord(in, plan)
	require.NoError(t, j.RecordPlan(first))
	require.NoError(t, j.RecordPlan(NewRecord(in, plan)))

	all, err := j.ListPlans("")
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Newest first: ULIDs sort by generation time.
	assert.Equal(t, first.PlanID, all[1].PlanID)
	assert.Equal(t, plan, all[0].Plan)
	assert.Equal(t, in, all[0].Input)

	es, err := j.ListPlans("ES")
	require.NoError(t, err)
	assert.Len(t, es, 2)

	none, err := j.ListPlans("NQ")
	require.NoError(t, err)
	assert.Empty(t, none)
}
