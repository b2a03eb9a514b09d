package models

import "time"

type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentMobileMoney  PaymentMethod = "mobile_money"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
	DonationRefunded  DonationStatus = "refunded"
)

type Donation struct {
	ID          string  `bson:"_id,omitempty" json:"id"`
	Amount      float64 `bson:"amount" json:"amount"`
	Currency    string  `bson:"currency" json:"currency"`
	DonorName   string  `bson:"donor_name,omitempty" json:"donorName,omitempty"`
	DonorEmail  string  `bson:"donor_email,omitempty" json:"donorEmail,omitempty"`
	DonorPhone  string  `bson:"donor_phone,omitempty" json:"donorPhone,omitempty"`
	IsAnonymous bool    `bson:"is_anonymous" json:"isAnonymous"`

	// Campaign holds the campaign title, not its id. Renaming a campaign
	// orphans the attribution of older donations; kept as-is pending a
	// product decision.
	Campaign string `bson:"campaign,omitempty" json:"campaign,omitempty"`

	PaymentMethod PaymentMethod  `bson:"payment_method" json:"paymentMethod"` // card, mobile_money, bank_transfer
	Status        DonationStatus `bson:"status" json:"status"`                // pending, completed, failed, refunded
	Receipt       string         `bson:"receipt,omitempty" json:"receipt,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
