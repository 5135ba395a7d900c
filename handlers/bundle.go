// File: handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Booking    *BookingHandler
	Departure  *DepartureHandler
	Expedition *ExpeditionHandler
	Faq        *FaqHandler
	Review     *ReviewHandler
	User       *UserHandler
	Stats      *StatsHandler
}
