package models

import "time"

// HistoryRecord is one saved usage estimation. The appliance list is kept as
// the raw JSON the client computed from; the server never interprets it.
type HistoryRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	AppliancesJSON string    `gorm:"column:appliances_json;type:text" json:"appliances_json"`
	TotalKWh       float64   `gorm:"column:total_kwh" json:"total_kwh"`
	TotalCost      float64   `gorm:"column:total_cost" json:"total_cost"`
	ModelUsed      string    `gorm:"size:64" json:"model_used"`
	CreatedAt      time.Time `json:"timestamp"`
}

func (HistoryRecord) TableName() string { return "history" }

// HistoryWithOwner is an admin-view row: a history record joined with the
// owning user's profile fields.
type HistoryWithOwner struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Location  string    `json:"location"`
	TotalKWh  float64   `gorm:"column:total_kwh" json:"total_kwh"`
	TotalCost float64   `gorm:"column:total_cost" json:"total_cost"`
	ModelUsed string    `json:"model_used"`
	CreatedAt time.Time `json:"-"`
}
