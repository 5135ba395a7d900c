package models

import "time"

type Review struct {
	ID         string    `bson:"reviewId" json:"reviewId"`
	Expedition string    `bson:"expedition" json:"expedition"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Approved   bool      `bson:"approved" json:"approved"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
