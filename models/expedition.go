package models

import "time"

// Expedition is the catalog entry travelers book departures against.
type Expedition struct {
	ID          string    `bson:"expeditionId" json:"expeditionId"`
	Name        string    `bson:"name" json:"name"`
	Slug        string    `bson:"slug" json:"slug"`
	Subheading  string    `bson:"subheading,omitempty" json:"subheading,omitempty"`
	Duration    int       `bson:"duration,omitempty" json:"duration,omitempty"` // days
	Price       float64   `bson:"price,omitempty" json:"price,omitempty"`
	Season      string    `bson:"season,omitempty" json:"season,omitempty"`
	MaxAltitude int       `bson:"maxAltitude,omitempty" json:"maxAltitude,omitempty"` // meters
	GroupSize   int       `bson:"groupSize,omitempty" json:"groupSize,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
