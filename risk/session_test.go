package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_EditMarksStaleWithoutDeleting(t *testing.T) {
	t.Parallel()

	sess := NewSession(testTable)
	sess.Edit(baseSnapshot())

	plan, errs := sess.Calculate()
	require.Empty(t, errs)
	assert.False(t, sess.Stale())

	edited := baseSnapshot()
	edited.StopTicks = "16"
	sess.Edit(edited)

	assert.True(t, sess.Stale())
	last, _, ok := sess.Last()
	require.True(t, ok)
	assert.Equal(t, plan, last, "prior result survives the edit")
}

func TestSession_CalculateClearsStaleOnFailureToo(t *testing.T) {
	t.Parallel()

	sess := NewSession(testTable)
	sess.Edit(baseSnapshot())
	sess.Calculate()

	bad := baseSnapshot()
	bad.ProfitTarget = ""
	sess.Edit(bad)
	require.True(t, sess.Stale())

	_, errs := sess.Calculate()
	assert.Contains(t, errs, FieldProfitTarget)
	assert.False(t, sess.Stale(), "a failed attempt still clears the flag")

	_, last, ok := sess.Last()
	require.True(t, ok)
	assert.Contains(t, last, FieldProfitTarget)
}

func TestSession_NoResultBeforeFirstCalculate(t *testing.T) {
	t.Parallel()

	sess := NewSession(testTable)
	sess.Edit(baseSnapshot())

	_, _, ok := sess.Last()
	assert.False(t, ok)
	assert.False(t, sess.Stale(), "edits before any result are not stale")
}

func TestSession_IdenticalEditIsNotAnEdit(t *testing.T) {
	t.Parallel()

	sess := NewSession(testTable)
	sess.Edit(baseSnapshot())
	sess.Calculate()

	sess.Edit(baseSnapshot())
	assert.False(t, sess.Stale())
}
