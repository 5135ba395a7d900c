package models

import "time"

// Faq is one question/answer entry scoped to a parent expedition. Order values
// are unique within one expedition and define display sequence.
type Faq struct {
	ID          string    `bson:"faqId" json:"faqId"`
	Expedition  string    `bson:"expedition" json:"expedition"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
