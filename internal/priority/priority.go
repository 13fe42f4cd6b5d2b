// Package priority derives a ticket's priority tier and SLA targets from
// impact, urgency and asset criticality.
package priority

import (
	"time"

	"asset-console/internal/catalog"
	"asset-console/internal/entities"
)

const (
	TierP1 = "P1"
	TierP2 = "P2"
	TierP3 = "P3"
	TierP4 = "P4"
)

// Score multiplies impact (1..5), urgency (1..5) and criticality (1..3).
// Criticality outside its range is normalized to the default level.
func Score(impact, urgency, criticality int) int {
	return impact * urgency * catalog.NormalizeCriticality(criticality)
}

// TierFor maps a score to a tier. Boundaries are exact: 50 is still P1,
// 25 is still P2, 10 is still P3.
func TierFor(score int) string {
	switch {
	case score >= 50:
		return TierP1
	case score >= 25:
		return TierP2
	case score >= 10:
		return TierP3
	default:
		return TierP4
	}
}

// SLATargets are the response/resolution deadlines for a scored ticket.
// Both pointers are nil when no policy covers the tier; a missing policy is
// not an error.
type SLATargets struct {
	Tier             string     `json:"tier"`
	ResponseTarget   *time.Time `json:"response_target,omitempty"`
	ResolutionTarget *time.Time `json:"resolution_target,omitempty"`
}

// TargetsFor looks up the tier's policy by exact match and projects the
// deadlines from now. Same inputs always produce the same targets.
func TargetsFor(tier string, policies []entities.SLAPolicy, now time.Time) SLATargets {
	targets := SLATargets{Tier: tier}
	for _, p := range policies {
		if p.Tier == tier {
			response := now.Add(time.Duration(p.ResponseMinutes) * time.Minute)
			resolution := now.Add(time.Duration(p.RestoreMinutes) * time.Minute)
			targets.ResponseTarget = &response
			targets.ResolutionTarget = &resolution
			break
		}
	}
	return targets
}

// Evaluate is the full recompute triggered whenever impact, urgency, the
// selected asset or the policy list changes.
func Evaluate(impact, urgency, criticality int, policies []entities.SLAPolicy, now time.Time) SLATargets {
	return TargetsFor(TierFor(Score(impact, urgency, criticality)), policies, now)
}
