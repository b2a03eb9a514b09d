package models

// User is a seeded dashboard account. Role is a free-form label shown in the
// admin UI; it is carried in the JWT but never checked against a permission
// model.
type User struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`
	Role         string `bson:"role" json:"role"`
}
