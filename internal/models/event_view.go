package models

// EventView is an event enriched with derived fields for listings:
// remaining seats (nil when the event has no capacity set) and whether the
// requesting user holds an active registration.
type EventView struct {
	EventDB
	AvailableSeats *int `json:"available_seats"`
	IsRegistered   bool `json:"is_registered"`
}
