// Package catalog holds the static display catalogs for workflow and asset
// statuses. The status sets are closed by contract with the platform API;
// unknown codes must render with a fallback, never fail.
package catalog

// --- RMA / replacement lifecycle statuses ---

const (
	StatusRequested             = "Requested"
	StatusPendingApproval       = "PendingApproval"
	StatusApproved              = "Approved"
	StatusRejected              = "Rejected"
	StatusReplacementAllocated  = "ReplacementAllocated"
	StatusAwaitingReplacement   = "AwaitingReplacement"
	StatusReplacementShipped    = "ReplacementShipped"
	StatusReplacementReceived   = "ReplacementReceived"
	StatusSentToHO              = "SentToHO"
	StatusReceivedAtHO          = "ReceivedAtHO"
	StatusSentToVendor          = "SentToVendor"
	StatusAtVendor              = "AtVendor"
	StatusRepairInProgress      = "RepairInProgress"
	StatusRepaired              = "Repaired"
	StatusRepairDeclined        = "RepairDeclined"
	StatusReturnShipped         = "ReturnShipped"
	StatusReturnedToSite        = "ReturnedToSite"
	StatusReadyForInstallation  = "ReadyForInstallation"
	StatusInstallationScheduled = "InstallationScheduled"
	StatusInstalling            = "Installing"
	StatusInstalled             = "Installed"
	StatusVerificationPending   = "VerificationPending"
	StatusFaultyItemReturned    = "FaultyItemReturned"
	StatusFaultyItemScrapped    = "FaultyItemScrapped"
	StatusDiscarded             = "Discarded"
)

// --- Asset operational statuses ---

const (
	AssetOperational   = "Operational"
	AssetDegraded      = "Degraded"
	AssetOffline       = "Offline"
	AssetMaintenance   = "Maintenance"
	AssetOnline        = "Online"
	AssetPassiveDevice = "Passive Device"
)

// StatusMeta is the display metadata attached to a status code.
type StatusMeta struct {
	Label     string `json:"label"`
	ColorTier string `json:"color_tier"`
	IconKey   string `json:"icon_key"`
}

var workflowCatalog = map[string]StatusMeta{
	StatusRequested:             {Label: "Requested", ColorTier: "info", IconKey: "inbox"},
	StatusPendingApproval:       {Label: "Pending Approval", ColorTier: "warning", IconKey: "hourglass"},
	StatusApproved:              {Label: "Approved", ColorTier: "primary", IconKey: "check"},
	StatusRejected:              {Label: "Rejected", ColorTier: "danger", IconKey: "x-circle"},
	StatusReplacementAllocated:  {Label: "Replacement Allocated", ColorTier: "info", IconKey: "box"},
	StatusAwaitingReplacement:   {Label: "Awaiting Replacement", ColorTier: "warning", IconKey: "hourglass"},
	StatusReplacementShipped:    {Label: "Replacement Shipped", ColorTier: "info", IconKey: "truck"},
	StatusReplacementReceived:   {Label: "Replacement Received", ColorTier: "info", IconKey: "package"},
	StatusSentToHO:              {Label: "Sent to HO", ColorTier: "info", IconKey: "send"},
	StatusReceivedAtHO:          {Label: "Received at HO", ColorTier: "info", IconKey: "package"},
	StatusSentToVendor:          {Label: "Sent to Vendor", ColorTier: "info", IconKey: "send"},
	StatusAtVendor:              {Label: "At Vendor", ColorTier: "warning", IconKey: "tool"},
	StatusRepairInProgress:      {Label: "Repair in Progress", ColorTier: "warning", IconKey: "tool"},
	StatusRepaired:              {Label: "Repaired", ColorTier: "primary", IconKey: "check"},
	StatusRepairDeclined:        {Label: "Repair Declined", ColorTier: "danger", IconKey: "alert-triangle"},
	StatusReturnShipped:         {Label: "Return Shipped", ColorTier: "info", IconKey: "truck"},
	StatusReturnedToSite:        {Label: "Returned to Site", ColorTier: "info", IconKey: "package"},
	StatusReadyForInstallation:  {Label: "Ready for Installation", ColorTier: "primary", IconKey: "clipboard"},
	StatusInstallationScheduled: {Label: "Installation Scheduled", ColorTier: "info", IconKey: "calendar"},
	StatusInstalling:            {Label: "Installing", ColorTier: "warning", IconKey: "tool"},
	StatusInstalled:             {Label: "Installed", ColorTier: "success", IconKey: "check-circle"},
	StatusVerificationPending:   {Label: "Verification Pending", ColorTier: "warning", IconKey: "eye"},
	StatusFaultyItemReturned:    {Label: "Faulty Item Returned", ColorTier: "info", IconKey: "rotate-ccw"},
	StatusFaultyItemScrapped:    {Label: "Faulty Item Scrapped", ColorTier: "secondary", IconKey: "trash"},
	StatusDiscarded:             {Label: "Discarded", ColorTier: "secondary", IconKey: "trash"},
}

var assetCatalog = map[string]StatusMeta{
	AssetOperational:   {Label: "Operational", ColorTier: "success", IconKey: "check-circle"},
	AssetDegraded:      {Label: "Degraded", ColorTier: "warning", IconKey: "alert-triangle"},
	AssetOffline:       {Label: "Offline", ColorTier: "danger", IconKey: "wifi-off"},
	AssetMaintenance:   {Label: "Maintenance", ColorTier: "info", IconKey: "tool"},
	AssetOnline:        {Label: "Online", ColorTier: "success", IconKey: "wifi"},
	AssetPassiveDevice: {Label: "Passive Device", ColorTier: "secondary", IconKey: "box"},
}

// LabelFor resolves workflow (RMA/ticket) lifecycle statuses.
func LabelFor(status string) StatusMeta {
	if meta, ok := workflowCatalog[status]; ok {
		return meta
	}
	return StatusMeta{Label: status, ColorTier: "secondary", IconKey: "clock"}
}

// AssetLabelFor resolves asset operational statuses with its own fallback.
func AssetLabelFor(status string) StatusMeta {
	if meta, ok := assetCatalog[status]; ok {
		return meta
	}
	return StatusMeta{Label: status, ColorTier: "secondary", IconKey: "clock"}
}

// WorkflowStatuses returns the full lifecycle catalog keyed by status code.
func WorkflowStatuses() map[string]StatusMeta {
	out := make(map[string]StatusMeta, len(workflowCatalog))
	for k, v := range workflowCatalog {
		out[k] = v
	}
	return out
}

// AssetStatuses returns the asset operational catalog keyed by status code.
func AssetStatuses() map[string]StatusMeta {
	out := make(map[string]StatusMeta, len(assetCatalog))
	for k, v := range assetCatalog {
		out[k] = v
	}
	return out
}
