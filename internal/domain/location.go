package domain

import "time"

// Position is a raw device GPS fix.
type Position struct {
	Latitude  float64
	Longitude float64
	Note      string
	Timestamp time.Time
}

// LocationSample is the payload mirrored to the server while a delivery
// is in flight. Ephemeral: the agent keeps only the most recent sample.
type LocationSample struct {
	Latitude       float64
	Longitude      float64
	Note           string
	NotifyCustomer bool
	Timestamp      time.Time
}

// SampleFromPosition converts a device fix into the outbound sample.
// The server contract always notifies the customer.
func SampleFromPosition(p Position) LocationSample {
	return LocationSample{
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Note:           p.Note,
		NotifyCustomer: true,
		Timestamp:      p.Timestamp,
	}
}
