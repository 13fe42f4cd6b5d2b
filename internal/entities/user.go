package entities

import "github.com/aarondl/null/v8"

type User struct {
	ID       int         `json:"id"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Role     string      `json:"role"`
	SiteID   null.String `json:"site_id"`
	Phone    null.String `json:"phone"`
	IsActive bool        `json:"is_active"`
}

// SiteRights is one per-site override inside a user's rights record.
// Site ids are unique within a record by contract, but the platform has been
// observed to return duplicates, so consumers must not assume uniqueness.
type SiteRights struct {
	SiteID   string   `json:"site_id"`
	SiteName string   `json:"site_name"`
	Rights   []string `json:"rights"`
}

type UserRightsRecord struct {
	User         User         `json:"user"`
	GlobalRights []string     `json:"global_rights"`
	SiteRights   []SiteRights `json:"site_rights"`
}

// TotalRights sums every permission-code entry, global plus all site
// overrides. Duplicate site entries are counted as-is.
func (r UserRightsRecord) TotalRights() int {
	total := len(r.GlobalRights)
	for _, sr := range r.SiteRights {
		total += len(sr.Rights)
	}
	return total
}

func (r UserRightsRecord) HasAnyRights() bool {
	return r.TotalRights() > 0
}
