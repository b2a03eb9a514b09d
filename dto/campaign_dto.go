package dto

import (
	"time"

	"github.com/13132klain/ufa-backend/internal/models"
)

type CampaignRequest struct {
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	TargetAmount float64                 `json:"targetAmount"`
	StartDate    *time.Time              `json:"startDate,omitempty"`
	EndDate      *time.Time              `json:"endDate,omitempty"`
	IsActive     bool                    `json:"isActive"`
	Featured     bool                    `json:"featured"`
	Category     models.CampaignCategory `json:"category"`
	Image        string                  `json:"image,omitempty"`
}

type CampaignUpdate struct {
	Title        *string                  `json:"title,omitempty"`
	Description  *string                  `json:"description,omitempty"`
	TargetAmount *float64                 `json:"targetAmount,omitempty"`
	StartDate    *time.Time               `json:"startDate,omitempty"`
	EndDate      *time.Time               `json:"endDate,omitempty"`
	IsActive     *bool                    `json:"isActive,omitempty"`
	Featured     *bool                    `json:"featured,omitempty"`
	Category     *models.CampaignCategory `json:"category,omitempty"`
	Image        *string                  `json:"image,omitempty"`
}
