package models

import "time"

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
	MembershipRejected MembershipStatus = "rejected"
)

type Membership struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`

	County       string `bson:"county,omitempty" json:"county,omitempty"`
	Constituency string `bson:"constituency,omitempty" json:"constituency,omitempty"`
	Occupation   string `bson:"occupation,omitempty" json:"occupation,omitempty"`

	Interests  []string `bson:"interests,omitempty" json:"interests,omitempty"`
	Motivation string   `bson:"motivation,omitempty" json:"motivation,omitempty"`

	Status      MembershipStatus `bson:"status" json:"status"` // pending, approved, rejected
	SubmittedAt time.Time        `bson:"submitted_at" json:"submittedAt"`
	ReviewedAt  *time.Time       `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
	ReviewedBy  string           `bson:"reviewed_by,omitempty" json:"reviewedBy,omitempty"`
}
