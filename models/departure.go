package models

import "time"

// GroupDeparture is one scheduled, capacity-bounded instance of an expedition.
// Invariant: 0 <= SoldQuantity <= TotalQuantity. The departure repository is the
// only place allowed to mutate SoldQuantity, via conditional updates.
type GroupDeparture struct {
	ID            string    `bson:"groupDepartureId" json:"groupDepartureId"`
	Expedition    string    `bson:"expedition" json:"expedition"`
	StartDate     time.Time `bson:"startDate" json:"startDate"`
	EndDate       time.Time `bson:"endDate" json:"endDate"`
	Duration      int       `bson:"duration,omitempty" json:"duration,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	TotalQuantity int       `bson:"totalQuantity" json:"totalQuantity"`
	SoldQuantity  int       `bson:"soldQuantity" json:"soldQuantity"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AvailableSeats reports the remaining bookable seats.
func (d *GroupDeparture) AvailableSeats() int {
	return d.TotalQuantity - d.SoldQuantity
}

// PrivateDeparture is a booking target with no shared seat inventory.
type PrivateDeparture struct {
	ID         string    `bson:"privateDepartureId" json:"privateDepartureId"`
	Expedition string    `bson:"expedition" json:"expedition"`
	StartDate  time.Time `bson:"startDate" json:"startDate"`
	EndDate    time.Time `bson:"endDate" json:"endDate"`
	Price      float64   `bson:"price" json:"price"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
