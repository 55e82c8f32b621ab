package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account in the `users` collection.
// Email is stored lowercased and carries a unique index.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName      string             `bson:"firstName" json:"firstName"`
	LastName       string             `bson:"lastName" json:"lastName"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"` // bcrypt hash, never serialised
	Phone          string             `bson:"phone" json:"phone"`
	City           string             `bson:"city" json:"city"`
	AgreeTerms     bool               `bson:"agreeTerms" json:"agreeTerms"`
	AgreeMarketing bool               `bson:"agreeMarketing" json:"agreeMarketing"`
	IsVerified     bool               `bson:"isVerified" json:"isVerified"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
