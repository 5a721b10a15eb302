package models

// Summary holds aggregate counts for the dashboard.
type Summary struct {
	TotalEvents     int64 `json:"total_events"`
	TotalUsers      int64 `json:"total_users"`
	TotalCategories int64 `json:"total_categories"`
}
