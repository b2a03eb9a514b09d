package dto

type LeaderRequest struct {
	Name        string            `json:"name"`
	Position    string            `json:"position"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}

type LeaderUpdate struct {
	Name        *string           `json:"name,omitempty"`
	Position    *string           `json:"position,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}
