package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a registered user of the API
type Account struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"` // bcrypt digest, never serialized
	Role     string             `bson:"role" json:"role"`
}
