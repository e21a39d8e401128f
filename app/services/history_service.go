package services

import (
	"energy-tracker/app/models"
	"energy-tracker/app/repo"
)

type HistoryService struct{ history *repo.HistoryRepository }

func NewHistoryService(history *repo.HistoryRepository) *HistoryService {
	return &HistoryService{history: history}
}

// Save records a usage estimation for ownerID. The timestamp is assigned by
// the store, never taken from the client.
func (s *HistoryService) Save(ownerID uint, appliancesJSON string, totalKWh, totalCost float64, modelUsed string) error {
	return s.history.Create(&models.HistoryRecord{
		UserID:         ownerID,
		AppliancesJSON: appliancesJSON,
		TotalKWh:       totalKWh,
		TotalCost:      totalCost,
		ModelUsed:      modelUsed,
	})
}

func (s *HistoryService) ListOwn(ownerID uint) ([]models.HistoryRecord, error) {
	return s.history.ListByOwner(ownerID)
}

func (s *HistoryService) ListAll() ([]models.HistoryWithOwner, error) {
	return s.history.ListAllWithOwners()
}

func (s *HistoryService) DeleteOne(id uint) error { return s.history.DeleteByID(id) }

func (s *HistoryService) DeleteAll() (int64, error) { return s.history.DeleteAll() }
