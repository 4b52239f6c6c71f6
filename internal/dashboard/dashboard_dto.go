package dashboard

// rawStats mirrors the upstream dashboard-stats payload. Key casing is
// inconsistent on the wire (pendingReviews vs new_this_month); it is mapped
// away here so the console only ever sees the typed response.
type rawStats struct {
	TotalEmployees       int    `json:"total_employees"`
	TotalDepartments     int    `json:"total_departments"`
	NewThisMonth         int    `json:"new_this_month"`
	PerformanceIndex     string `json:"performance_index"`
	NewEmployeesThisWeek int    `json:"new_employees_this_week"`
	PendingReviews       int    `json:"pendingReviews"`
	PendingOnboarding    int    `json:"pendingOnboarding"`
	Growth               string `json:"growth"`
}

type StatsResponse struct {
	TotalEmployees       int    `json:"totalEmployees"`
	Departments          int    `json:"departments"`
	NewThisMonth         int    `json:"newThisMonth"`
	PerformanceIndex     string `json:"performanceIndex"`
	NewEmployeesThisWeek int    `json:"newEmployeesThisWeek"`
	PendingReviews       int    `json:"pendingReviews"`
	PendingOnboarding    int    `json:"pendingOnboarding"`
	Growth               string `json:"growth"`
}

func mapToResponse(raw rawStats) StatsResponse {
	resp := StatsResponse{
		TotalEmployees:       raw.TotalEmployees,
		Departments:          raw.TotalDepartments,
		NewThisMonth:         raw.NewThisMonth,
		PerformanceIndex:     raw.PerformanceIndex,
		NewEmployeesThisWeek: raw.NewEmployeesThisWeek,
		PendingReviews:       raw.PendingReviews,
		PendingOnboarding:    raw.PendingOnboarding,
		Growth:               raw.Growth,
	}
	if resp.PerformanceIndex == "" {
		resp.PerformanceIndex = "0%"
	}
	if resp.Growth == "" {
		resp.Growth = "0%"
	}
	return resp
}
