// Package ticketdraft models the client-side ticket form before submission:
// a cascading site → location → asset-type → device-type → asset selection
// with an explicit two-phase lifecycle. During Hydrating the whole chain is
// bulk-set from a persisted ticket without triggering resets; after the
// one-time transition to Interactive, editing a level clears every dependent
// level below it.
package ticketdraft

import (
	"github.com/go-playground/validator/v10"

	"asset-console/internal/entities"
)

type Phase int

const (
	Hydrating Phase = iota
	Interactive
)

type Draft struct {
	SiteID       string   `json:"site_id" validate:"required"`
	LocationName string   `json:"location_name,omitempty"`
	AssetType    string   `json:"asset_type,omitempty"`
	DeviceType   string   `json:"device_type,omitempty"`
	AssetID      string   `json:"asset_id,omitempty"`
	Category     string   `json:"category" validate:"required"`
	SubCategory  string   `json:"sub_category,omitempty"`
	Title        string   `json:"title" validate:"required,min=3"`
	Description  string   `json:"description" validate:"required"`
	Impact       int      `json:"impact" validate:"required,min=1,max=5"`
	Urgency      int      `json:"urgency" validate:"required,min=1,max=5"`
	AssignedTo   string   `json:"assigned_to,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

var validate = validator.New()

type Form struct {
	phase Phase
	draft Draft
}

// NewForm starts an empty, interactive form for ticket creation.
func NewForm() *Form {
	return &Form{phase: Interactive}
}

// NewFormFromTicket reconstructs the full cascade chain from a persisted
// ticket. The form stays in Hydrating until FinishHydration is called, so
// the bulk-set below does not wipe the lower levels it just restored.
func NewFormFromTicket(t entities.Ticket) *Form {
	f := &Form{phase: Hydrating}
	f.draft = Draft{
		SiteID:       t.SiteID,
		LocationName: t.LocationName.String,
		AssetType:    t.AssetType.String,
		DeviceType:   t.DeviceType.String,
		AssetID:      t.AssetID.String,
		Category:     t.Category,
		SubCategory:  t.SubCategory.String,
		Title:        t.Title,
		Description:  t.Description,
		Impact:       t.Impact,
		Urgency:      t.Urgency,
		AssignedTo:   t.AssignedTo.String,
		Tags:         t.Tags,
	}
	return f
}

func (f *Form) Phase() Phase { return f.phase }

func (f *Form) Draft() Draft { return f.draft }

// FinishHydration transitions Hydrating → Interactive. It happens exactly
// once; further calls are no-ops.
func (f *Form) FinishHydration() {
	f.phase = Interactive
}

func (f *Form) SetSite(siteID string) {
	f.draft.SiteID = siteID
	if f.phase == Interactive {
		f.draft.LocationName = ""
		f.draft.AssetType = ""
		f.draft.DeviceType = ""
		f.draft.AssetID = ""
	}
}

func (f *Form) SetLocation(locationName string) {
	f.draft.LocationName = locationName
	if f.phase == Interactive {
		f.draft.AssetType = ""
		f.draft.DeviceType = ""
		f.draft.AssetID = ""
	}
}

func (f *Form) SetAssetType(assetType string) {
	f.draft.AssetType = assetType
	if f.phase == Interactive {
		f.draft.DeviceType = ""
		f.draft.AssetID = ""
	}
}

func (f *Form) SetDeviceType(deviceType string) {
	f.draft.DeviceType = deviceType
	if f.phase == Interactive {
		f.draft.AssetID = ""
	}
}

func (f *Form) SetAsset(assetID string) {
	f.draft.AssetID = assetID
}

func (f *Form) SetCategory(category, subCategory string) {
	f.draft.Category = category
	f.draft.SubCategory = subCategory
}

func (f *Form) SetDetails(title, description string) {
	f.draft.Title = title
	f.draft.Description = description
}

func (f *Form) SetSeverity(impact, urgency int) {
	f.draft.Impact = impact
	f.draft.Urgency = urgency
}

func (f *Form) SetAssignment(assignedTo string, tags []string) {
	f.draft.AssignedTo = assignedTo
	f.draft.Tags = tags
}

// Validate blocks submission before any network call. Returns
// validator.ValidationErrors on failure.
func (f *Form) Validate() error {
	return ValidateDraft(f.draft)
}

// ValidateDraft checks a draft that arrived fully formed (e.g. from an API
// request body) against the same rules the interactive form uses.
func ValidateDraft(d Draft) error {
	return validate.Struct(&d)
}
