package models

type Leader struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name"`
	Position string `bson:"position" json:"position"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	// SocialLinks maps platform name (twitter, facebook, ...) to a profile
	// URL; keys are sparse and optional.
	SocialLinks map[string]string `bson:"social_links,omitempty" json:"socialLinks,omitempty"`
}
