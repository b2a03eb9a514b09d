package dto

type MembershipRequest struct {
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone,omitempty"`
	County       string   `json:"county,omitempty"`
	Constituency string   `json:"constituency,omitempty"`
	Occupation   string   `json:"occupation,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Motivation   string   `json:"motivation,omitempty"`
}

type MembershipReview struct {
	Approve bool `json:"approve"`
}
