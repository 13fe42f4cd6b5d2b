package rights

// ScopeGlobal is the literal scope id the platform uses for a user's
// site-independent rights.
const ScopeGlobal = "global"

// Permission codes are a closed set shared by contract with the platform.
// The console never invents codes; it only displays and toggles these.
const (
	PermViewDashboard = "VIEW_DASHBOARD"
	PermViewTickets   = "VIEW_TICKETS"
	PermManageTickets = "MANAGE_TICKETS"
	PermViewAssets    = "VIEW_ASSETS"
	PermManageAssets  = "MANAGE_ASSETS"
	PermViewReports   = "VIEW_REPORTS"
	PermManageStock   = "MANAGE_STOCK"
	PermApproveRMA    = "APPROVE_RMA"
	PermManageUsers   = "MANAGE_USERS"
	PermManageRights  = "MANAGE_RIGHTS"
)

var AllPermissions = []string{
	PermViewDashboard,
	PermViewTickets,
	PermManageTickets,
	PermViewAssets,
	PermManageAssets,
	PermViewReports,
	PermManageStock,
	PermApproveRMA,
	PermManageUsers,
	PermManageRights,
}

var knownPermissions = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AllPermissions))
	for _, p := range AllPermissions {
		m[p] = struct{}{}
	}
	return m
}()

func IsKnownPermission(code string) bool {
	_, ok := knownPermissions[code]
	return ok
}
