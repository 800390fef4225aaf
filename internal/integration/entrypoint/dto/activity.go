package dto

import (
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// SetPrayerStatusRequest represents the request body for overriding a prayer status.
type SetPrayerStatusRequest struct {
	Status string `json:"status"`
}

// AwardRewardRequest represents the request body for a one-off reward.
type AwardRewardRequest struct {
	Kind       string `json:"kind"`
	Identifier string `json:"identifier"`
	Points     *int   `json:"points"`
}

// RetentionRequest represents the request body for a manual retention pass.
type RetentionRequest struct {
	KeepDays int `json:"keep_days"`
}

// LevelsResponse lists the level ladder.
type LevelsResponse struct {
	Levels []entity.Level `json:"levels"`
}

// PointsTableResponse lists the reward of every action.
type PointsTableResponse struct {
	Actions map[entity.Action]int `json:"actions"`
}
