package report

// DashboardStats adalah angka ringkas untuk layar dashboard admin.
type DashboardStats struct {
	ActiveEmployees int64 `json:"active_employees"`
	PresentToday    int64 `json:"present_today"`
	LateToday       int64 `json:"late_today"`
	AbsentToday     int64 `json:"absent_today"`
	PendingLeaves   int64 `json:"pending_leaves"`
}
