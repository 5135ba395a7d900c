package models

import "time"

// Payment lifecycle values carried on Booking.PaymentStatus.
const (
	PaymentPending   = "pending"
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
)

// Payment options.
const (
	PaymentOptionFull    = "full-payment"
	PaymentOptionDeposit = "deposit-payment"
)

// Booking statuses.
const (
	BookingStatusActive   = "active"
	BookingStatusCanceled = "canceled"
)

// Traveller is one member of a booking party.
type Traveller struct {
	FullName           string    `bson:"fullName" json:"fullName"`
	Email              string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone              string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender             string    `bson:"gender,omitempty" json:"gender,omitempty"`
	DOB                time.Time `bson:"dob,omitempty" json:"dob,omitempty"`
	PassportNumber     string    `bson:"passportNumber,omitempty" json:"passportNumber,omitempty"`
	PassportExpiryDate time.Time `bson:"passportExpiryDate,omitempty" json:"passportExpiryDate,omitempty"`
	Nationality        string    `bson:"nationality,omitempty" json:"nationality,omitempty"`
}

// Booking is a reservation of seats for a traveler party. Exactly one of
// Departure, PrivateDeparture, Activity or Training is normally set; only
// group-departure bookings consume shared seat inventory.
type Booking struct {
	ID                 string      `bson:"bookingId" json:"bookingId"`
	Type               string      `bson:"type,omitempty" json:"type,omitempty"` // "trip", "activity", "training"
	StartDate          time.Time   `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate            time.Time   `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Adults             int         `bson:"adults,omitempty" json:"adults,omitempty"`
	Childrens          int         `bson:"childrens,omitempty" json:"childrens,omitempty"`
	Travellers         []Traveller `bson:"travellers" json:"travellers"`
	Status             string      `bson:"status,omitempty" json:"status,omitempty"`
	InvoiceSent        bool        `bson:"invoiceSent" json:"invoiceSent"`
	IsSeen             bool        `bson:"isSeen" json:"isSeen"`
	PaymentMethod      string      `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaymentStatus      string      `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	PaymentOption      string      `bson:"paymentOption,omitempty" json:"paymentOption,omitempty"`
	PaymentID          string      `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	TotalAmount        float64     `bson:"totalAmount,omitempty" json:"totalAmount,omitempty"`
	DepositAmount      float64     `bson:"depositAmount,omitempty" json:"depositAmount,omitempty"`
	RemainingAmount    float64     `bson:"remainingAmount,omitempty" json:"remainingAmount,omitempty"`
	AdditionalServices []string    `bson:"additionalServices,omitempty" json:"additionalServices,omitempty"`
	Expedition         string      `bson:"expedition,omitempty" json:"expedition,omitempty"`
	Departure          string      `bson:"departure,omitempty" json:"departure,omitempty"`
	PrivateDeparture   string      `bson:"privateDeparture,omitempty" json:"privateDeparture,omitempty"`
	Activity           string      `bson:"activity,omitempty" json:"activity,omitempty"`
	Training           string      `bson:"training,omitempty" json:"training,omitempty"`
	User               string      `bson:"user,omitempty" json:"user,omitempty"`
	CreatedAt          time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Seats is the number of seats this booking consumes on its departure.
// The traveller list is authoritative; adults/childrens are descriptive.
func (b *Booking) Seats() int {
	return len(b.Travellers)
}

// BookingOverview aggregates booking figures for the reporting endpoints.
type BookingOverview struct {
	TotalBookings       int     `bson:"totalBookings" json:"totalBookings"`
	TotalRevenueAmount  float64 `bson:"totalRevenueAmount" json:"totalRevenueAmount"`
	TotalTrekkers       int     `bson:"totalTrekkers" json:"totalTrekkers"`
	AverageBookingValue float64 `bson:"averageBookingValue" json:"averageBookingValue"`
	OutstandingPayments float64 `bson:"outstandingPayments" json:"outstandingPayments"`
}

// PaymentBreakdown aggregates amounts per payment option.
type PaymentBreakdown struct {
	FullPayments    float64 `bson:"fullPayments" json:"fullPayments"`
	DepositPayments float64 `bson:"depositPayments" json:"depositPayments"`
}
