package dto

type SaveHistoryRequest struct {
	AppliancesJSON string  `json:"appliances_json"`
	TotalKWh       float64 `json:"total_kwh"`
	TotalCost      float64 `json:"total_cost"`
	ModelUsed      string  `json:"model_used"`
}

type HistoryListResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// AdminHistoryEntry is a joined row with the timestamp already rendered for
// display; the stored instant stays RFC3339-sortable in the database.
type AdminHistoryEntry struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Location  string  `json:"location"`
	TotalKWh  float64 `json:"total_kwh"`
	TotalCost float64 `json:"total_cost"`
	ModelUsed string  `json:"model_used"`
	Timestamp string  `json:"timestamp"`
}

type DeleteAllResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
