// Package domain contains the core data types for the Trip Registry API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Trip is a scheduled journey clients can register for.
// Trips are managed outside this service; here they are read-only.
type Trip struct {
	IDTrip      int
	Name        string
	Description string
	DateFrom    time.Time
	DateTo      time.Time
	MaxPeople   int
}

// HasStartedBy reports whether the trip starts at or before t.
// Registration is only accepted while this is false.
func (t Trip) HasStartedBy(now time.Time) bool {
	return !t.DateFrom.After(now)
}
