package utils

import "time"

// FromUTCToTimezone converts a backend UTC timestamp into the given IANA
// timezone. Unknown zones fall back to the original time.
func FromUTCToTimezone(utcTime time.Time, timezone string) time.Time {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return utcTime
	}
	return utcTime.In(loc)
}
