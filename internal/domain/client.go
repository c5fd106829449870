package domain

import "time"

// Client is a person who can be registered for trips.
// Pesel is the national identification number and is expected to be unique
// across all clients; the service layer checks this, the schema does not.
type Client struct {
	IDClient  int
	FirstName string
	LastName  string
	Email     string
	Telephone string
	Pesel     string

	// Trips holds the client's registrations. It is only populated by
	// repo calls that explicitly load associations (ClientRepo.GetWithTrips).
	Trips []ClientTrip
}

// ClientTrip links one Client to one Trip.
// PaymentDate is nil until the registration has been paid for.
type ClientTrip struct {
	IDClient     int
	IDTrip       int
	RegisteredAt time.Time
	PaymentDate  *time.Time
}
