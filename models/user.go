package models

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID          string    `bson:"userId" json:"userId"`
	Email       string    `bson:"email" json:"email"`
	Password    string    `bson:"password" json:"-"`
	Role        string    `bson:"role" json:"role"`
	FirstName   string    `bson:"firstName,omitempty" json:"firstName,omitempty"`
	MiddleName  string    `bson:"middleName,omitempty" json:"middleName,omitempty"`
	LastName    string    `bson:"lastName,omitempty" json:"lastName,omitempty"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Gender      string    `bson:"gender,omitempty" json:"gender,omitempty"`
	DOB         string    `bson:"dob,omitempty" json:"dob,omitempty"`
	IsVerified  bool      `bson:"isVerified" json:"isVerified"`
	VerifyToken string    `bson:"verifyToken,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
