package dto

import "github.com/13132klain/ufa-backend/internal/models"

type DonationRequest struct {
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency,omitempty"`
	DonorName     string               `json:"donorName,omitempty"`
	DonorEmail    string               `json:"donorEmail,omitempty"`
	DonorPhone    string               `json:"donorPhone,omitempty"`
	IsAnonymous   bool                 `json:"isAnonymous"`
	Campaign      string               `json:"campaign,omitempty"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

type DonationUpdate struct {
	Status  *models.DonationStatus `json:"status,omitempty"`
	Receipt *string                `json:"receipt,omitempty"`
}
