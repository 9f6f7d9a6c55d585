package cleanup

// Target is one endpoint slated for removal.
// Verbs are the methods the endpoint was documented with. They are report
// metadata only and are never read from the document.
type Target struct {
	Path  string
	Verbs string
}

// TargetGroup is a named section of the removal list, mirrored by the report.
type TargetGroup struct {
	Name    string
	Targets []Target
}

// DefaultTargets lists the endpoints identified as unused by the frontend
// usage analysis. Group and entry order is the removal order.
var DefaultTargets = []TargetGroup{
	{
		Name: "Journal Entry Operations",
		Targets: []Target{
			{Path: "/journal-entries/auto-generate/purchase", Verbs: "POST"},
			{Path: "/journal-entries/auto-generate/sale", Verbs: "POST"},
			{Path: "/journal-entries/{id}/post", Verbs: "POST"},
			{Path: "/journal-entries/{id}/reverse", Verbs: "POST"},
			{Path: "/journal-entries/summary", Verbs: "GET"},
		},
	},
	{
		Name: "Account Operations",
		Targets: []Target{
			{Path: "/accounts/{account_id}/journal-entries", Verbs: "GET"},
		},
	},
	{
		Name: "Admin Operations",
		Targets: []Target{
			{Path: "/api/admin/check-cashbank-gl-links", Verbs: "GET"},
			{Path: "/api/admin/fix-cashbank-gl-links", Verbs: "POST"},
		},
	},
	{
		Name: "Balance Monitoring",
		Targets: []Target{
			{Path: "/api/monitoring/balance-health", Verbs: "GET"},
			{Path: "/api/monitoring/balance-sync", Verbs: "GET"},
			{Path: "/api/monitoring/discrepancies", Verbs: "GET"},
			{Path: "/api/monitoring/fix-discrepancies", Verbs: "POST"},
			{Path: "/api/monitoring/sync-status", Verbs: "GET"},
		},
	},
	{
		Name: "Payment Analytics & Export",
		Targets: []Target{
			{Path: "/api/payments/debug/recent", Verbs: "GET"},
			{Path: "/api/payments/analytics", Verbs: "GET"},
			{Path: "/api/payments/export/excel", Verbs: "GET"},
			{Path: "/api/payments/report/pdf", Verbs: "GET"},
			{Path: "/api/payments/{id}/pdf", Verbs: "GET"},
		},
	},
	{
		Name: "Enhanced Reports",
		Targets: []Target{
			{Path: "/api/reports/enhanced/financial-metrics", Verbs: "GET"},
			{Path: "/api/reports/enhanced/profit-loss", Verbs: "GET"},
			{Path: "/api/reports/enhanced/profit-loss-comparison", Verbs: "GET"},
		},
	},
	{
		Name: "Security Dashboard",
		Targets: []Target{
			{Path: "/api/v1/admin/security/alerts", Verbs: "GET"},
			{Path: "/api/v1/admin/security/alerts/{id}/acknowledge", Verbs: "PUT"},
			{Path: "/api/v1/admin/security/cleanup", Verbs: "POST"},
			{Path: "/api/v1/admin/security/config", Verbs: "GET"},
			{Path: "/api/v1/admin/security/incidents", Verbs: "GET"},
			{Path: "/api/v1/admin/security/incidents/{id}", Verbs: "GET"},
			{Path: "/api/v1/admin/security/incidents/{id}/resolve", Verbs: "PUT"},
			{Path: "/api/v1/admin/security/ip-whitelist", Verbs: "GET, POST"},
			{Path: "/api/v1/admin/security/metrics", Verbs: "GET"},
		},
	},
}

// AllPaths flattens groups into the removal order.
func AllPaths(groups []TargetGroup) []string {
	var res []string
	for _, g := range groups {
		for _, t := range g.Targets {
			res = append(res, t.Path)
		}
	}
	return res
}
