package entities

// SLAPolicy maps a priority tier to its response/restore commitments.
type SLAPolicy struct {
	ID             string `json:"id"`
	Tier           string `json:"tier"`
	ResponseMinutes int   `json:"response_minutes"`
	RestoreMinutes  int   `json:"restore_minutes"`
}
