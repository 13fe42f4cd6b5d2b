// Package timeline reduces workflow histories for compact display and
// splits record collections into ongoing vs completed.
package timeline

import (
	"asset-console/internal/catalog"
	"asset-console/internal/entities"
)

const DefaultPreviewSize = 5

// completedStatuses is the closed terminal set. Membership is exact,
// case-sensitive string equality; everything else counts as ongoing,
// including status values this build has never seen.
var completedStatuses = map[string]struct{}{
	catalog.StatusInstalled: {},
	catalog.StatusRejected:  {},
	catalog.StatusDiscarded: {},
}

func IsCompleted(status string) bool {
	_, ok := completedStatuses[status]
	return ok
}

// PreviewStep is a timeline step annotated for the compact marker strip.
type PreviewStep struct {
	entities.TimelineStep
	Meta     catalog.StatusMeta `json:"meta"`
	IsLatest bool               `json:"is_latest"`
}

// Preview returns the last n steps (DefaultPreviewSize when n <= 0).
// IsLatest marks the final step of the full history, not merely the last of
// the returned slice, so active highlighting tracks true recency even when
// only a suffix is shown.
func Preview(steps []entities.TimelineStep, n int) []PreviewStep {
	if n <= 0 {
		n = DefaultPreviewSize
	}
	start := len(steps) - n
	if start < 0 {
		start = 0
	}

	out := make([]PreviewStep, 0, len(steps)-start)
	for i := start; i < len(steps); i++ {
		out = append(out, PreviewStep{
			TimelineStep: steps[i],
			Meta:         catalog.LabelFor(steps[i].Status),
			IsLatest:     i == len(steps)-1,
		})
	}
	return out
}

// Partition splits RMA records by terminal status.
type Partition struct {
	Ongoing   []entities.RmaRecord `json:"ongoing"`
	Completed []entities.RmaRecord `json:"completed"`
}

func PartitionRecords(records []entities.RmaRecord) Partition {
	p := Partition{
		Ongoing:   make([]entities.RmaRecord, 0),
		Completed: make([]entities.RmaRecord, 0),
	}
	for _, r := range records {
		if IsCompleted(r.Status) {
			p.Completed = append(p.Completed, r)
		} else {
			p.Ongoing = append(p.Ongoing, r)
		}
	}
	return p
}
