package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"energy-tracker/app/dto"
	"energy-tracker/app/middleware"
	"energy-tracker/app/repo"
	"energy-tracker/app/services"
	"energy-tracker/global"
)

type HistoryController struct{ History *services.HistoryService }

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{History: history}
}

// Save records an estimation for the logged-in user. The owner comes from the
// session snapshot, never from the request body.
func (c *HistoryController) Save(w http.ResponseWriter, r *http.Request) {
	snap := middleware.GetSnapshot(r.Context())
	var req dto.SaveHistoryRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.History.Save(snap.UserID, req.AppliancesJSON, req.TotalKWh, req.TotalCost, req.ModelUsed); err != nil {
		global.Logger.Error().Err(err).Uint("user_id", snap.UserID).Msg("save history failed")
		writeError(w, "Failed to save history")
		return
	}
	writeOK(w, "History saved successfully")
}

func (c *HistoryController) ListOwn(w http.ResponseWriter, r *http.Request) {
	snap := middleware.GetSnapshot(r.Context())
	records, err := c.History.ListOwn(snap.UserID)
	if err != nil {
		global.Logger.Error().Err(err).Uint("user_id", snap.UserID).Msg("fetch history failed")
		writeError(w, "Failed to fetch history")
		return
	}
	writeJSON(w, dto.HistoryListResponse{Status: "ok", Data: records})
}

func (c *HistoryController) ListAll(w http.ResponseWriter, r *http.Request) {
	rows, err := c.History.ListAll()
	if err != nil {
		global.Logger.Error().Err(err).Msg("admin history fetch failed")
		writeError(w, "Failed to fetch data")
		return
	}
	entries := make([]dto.AdminHistoryEntry, 0, len(rows))
	for _, row := range rows {
		ts := "N/A"
		if !row.CreatedAt.IsZero() {
			ts = row.CreatedAt.Format("2006-01-02 15:04:05")
		}
		entries = append(entries, dto.AdminHistoryEntry{
			ID:        row.ID,
			Username:  row.Username,
			Email:     row.Email,
			Location:  row.Location,
			TotalKWh:  row.TotalKWh,
			TotalCost: row.TotalCost,
			ModelUsed: row.ModelUsed,
			Timestamp: ts,
		})
	}
	writeJSON(w, dto.HistoryListResponse{Status: "ok", Data: entries})
}

func (c *HistoryController) DeleteOne(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid entry id")
		return
	}
	if err := c.History.DeleteOne(uint(id)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, "Entry not found")
			return
		}
		global.Logger.Error().Err(err).Uint64("id", id).Msg("delete history failed")
		writeError(w, "Delete failed")
		return
	}
	writeOK(w, "Entry deleted")
}

func (c *HistoryController) DeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := c.History.DeleteAll()
	if err != nil {
		global.Logger.Error().Err(err).Msg("delete all history failed")
		writeError(w, "Delete failed")
		return
	}
	writeJSON(w, dto.DeleteAllResponse{
		Status:  "ok",
		Message: fmt.Sprintf("Deleted %d history entries", count),
		Deleted: count,
	})
}
