package priority

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-console/internal/entities"
)

func TestTierBoundariesAreExact(t *testing.T) {
	cases := []struct {
		score int
		tier  string
	}{
		{75, TierP1},
		{50, TierP1},
		{49, TierP2},
		{25, TierP2},
		{24, TierP3},
		{10, TierP3},
		{9, TierP4},
		{1, TierP4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, TierFor(tc.score), "score %d", tc.score)
	}
}

func TestScoreUsesDefaultCriticalityWhenUnset(t *testing.T) {
	// Missing asset criticality falls back to level 2.
	assert.Equal(t, 5*5*2, Score(5, 5, 0))
	assert.Equal(t, 3*4*2, Score(3, 4, 2))
	assert.Equal(t, 5*5*3, Score(5, 5, 3))
}

func TestTierSeverityMonotonicInScore(t *testing.T) {
	rank := map[string]int{TierP1: 1, TierP2: 2, TierP3: 3, TierP4: 4}
	prev := rank[TierFor(5 * 5 * 3)]
	for score := 5*5*3 - 1; score >= 1; score-- {
		cur := rank[TierFor(score)]
		require.GreaterOrEqual(t, cur, prev, "tier severity must not increase as score drops (score %d)", score)
		prev = cur
	}
}

func TestTargetsForMatchingPolicy(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	policies := []entities.SLAPolicy{
		{Tier: TierP2, ResponseMinutes: 30, RestoreMinutes: 240},
		{Tier: TierP1, ResponseMinutes: 15, RestoreMinutes: 120},
	}

	targets := Evaluate(5, 5, 3, policies, now)
	require.NotNil(t, targets.ResponseTarget)
	require.NotNil(t, targets.ResolutionTarget)
	assert.Equal(t, TierP1, targets.Tier)
	assert.Equal(t, now.Add(15*time.Minute), *targets.ResponseTarget)
	assert.Equal(t, now.Add(120*time.Minute), *targets.ResolutionTarget)
}

func TestTargetsForMissingPolicyIsNotAnError(t *testing.T) {
	now := time.Now()
	targets := TargetsFor(TierP4, []entities.SLAPolicy{{Tier: TierP1, ResponseMinutes: 15, RestoreMinutes: 60}}, now)
	assert.Equal(t, TierP4, targets.Tier)
	assert.Nil(t, targets.ResponseTarget)
	assert.Nil(t, targets.ResolutionTarget)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	policies := []entities.SLAPolicy{{Tier: TierP3, ResponseMinutes: 60, RestoreMinutes: 480}}
	first := Evaluate(2, 3, 2, policies, now)
	second := Evaluate(2, 3, 2, policies, now)
	assert.Equal(t, first, second)
}
