package models

// ReminderPayload is the payload carried by scheduled payment-reminder tasks.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	Email      string `json:"email"`
	Expedition string `json:"expedition"`
	Kind       string `json:"kind"` // "deposit-due" or "overdue"
	FireDate   string `json:"fireDate"`
}
