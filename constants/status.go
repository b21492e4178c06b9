package constants

// Reservation status
const (
	ReservationStatusActive    = "active"
	ReservationStatusCancelled = "cancelled"
)

// ID prefixes for generated identifiers
const (
	HotelIDPrefix       = "HOT"
	CustomerIDPrefix    = "CUS"
	ReservationIDPrefix = "RES"
)

// Collection file names inside the data directory
const (
	HotelsFile       = "hotels.jsonl"
	CustomersFile    = "customers.jsonl"
	ReservationsFile = "reservations.jsonl"
)
