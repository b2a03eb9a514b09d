package models

import "time"

type CampaignCategory string

const (
	CampaignEducation      CampaignCategory = "education"
	CampaignHealthcare     CampaignCategory = "healthcare"
	CampaignInfrastructure CampaignCategory = "infrastructure"
	CampaignEmergency      CampaignCategory = "emergency"
	CampaignGeneral        CampaignCategory = "general"
)

type DonationCampaign struct {
	ID           string  `bson:"_id,omitempty" json:"id"`
	Title        string  `bson:"title" json:"title"`
	Description  string  `bson:"description" json:"description"`
	TargetAmount float64 `bson:"target_amount" json:"targetAmount"`
	// CurrentAmount is incremented as donations complete, not derived by
	// summing the donations collection.
	CurrentAmount float64 `bson:"current_amount" json:"currentAmount"`

	StartDate time.Time  `bson:"start_date" json:"startDate"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`

	IsActive bool             `bson:"is_active" json:"isActive"`
	Featured bool             `bson:"featured" json:"featured"`
	Category CampaignCategory `bson:"category" json:"category"` // education, healthcare, infrastructure, emergency, general
	Image    string           `bson:"image,omitempty" json:"image,omitempty"`
}
