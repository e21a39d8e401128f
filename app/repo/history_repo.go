package repo

import (
	"energy-tracker/app/models"

	"gorm.io/gorm"
)

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) Create(h *models.HistoryRecord) error { return r.db.Create(h).Error }

// ListByOwner returns the owner's records newest-first. Ordering is by id,
// not timestamp: ids are monotonic per table and unambiguous within a second.
func (r *HistoryRepository) ListByOwner(ownerID uint) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	err := r.db.Where("user_id = ?", ownerID).Order("id DESC").Find(&records).Error
	return records, err
}

// ListAllWithOwners returns every record joined with its owner's profile,
// newest-first. LEFT JOIN so a dangling owner reference still yields the row.
func (r *HistoryRepository) ListAllWithOwners() ([]models.HistoryWithOwner, error) {
	var rows []models.HistoryWithOwner
	err := r.db.Table("history").
		Select("history.id, users.username, users.email, users.location, history.total_kwh, history.total_cost, history.model_used, history.created_at").
		Joins("LEFT JOIN users ON users.id = history.user_id").
		Order("history.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *HistoryRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&models.HistoryRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every history record and reports how many went.
func (r *HistoryRepository) DeleteAll() (int64, error) {
	res := r.db.Where("1 = 1").Delete(&models.HistoryRecord{})
	return res.RowsAffected, res.Error
}
