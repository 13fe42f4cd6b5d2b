package entities

// DashboardStats is a server-computed projection; the console only renders it.
type DashboardStats struct {
	TotalTickets         int64                 `json:"total_tickets"`
	OpenTickets          int64                 `json:"open_tickets"`
	SLABreached          int64                 `json:"sla_breached"`
	SLACompliancePercent float64               `json:"sla_compliance_percent"`
	TicketsByPriority    []DashboardBreakdown  `json:"tickets_by_priority"`
	TicketsByStatus      []DashboardBreakdown  `json:"tickets_by_status"`
	TicketsByCategory    []DashboardBreakdown  `json:"tickets_by_category"`
}

type DashboardBreakdown struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}
