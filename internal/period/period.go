// Package period resolves named reporting windows ("7d", "month", ...) to
// absolute start times. Every endpoint that accepts a period parameter uses
// this one resolver, so unknown tokens are rejected uniformly instead of
// silently falling back to a default window.
package period

import (
	"errors"
	"time"
)

// ErrInvalid is returned for an unrecognized period token.
var ErrInvalid = errors.New("invalid period")

// Resolve maps a period token to the window start relative to now.
//
//	7d / week   -> 7 days back
//	30d         -> 30 days back
//	90d         -> 90 days back
//	12m / 1y    -> 365 days back
//	day         -> start of the current day
//	month       -> 1 calendar month back
//	year        -> 1 calendar year back
func Resolve(token string, now time.Time) (time.Time, error) {
	switch token {
	case "7d", "week":
		return now.AddDate(0, 0, -7), nil
	case "30d":
		return now.AddDate(0, 0, -30), nil
	case "90d":
		return now.AddDate(0, 0, -90), nil
	case "12m", "1y":
		return now.AddDate(0, 0, -365), nil
	case "day":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case "month":
		return now.AddDate(0, -1, 0), nil
	case "year":
		return now.AddDate(-1, 0, 0), nil
	}
	return time.Time{}, ErrInvalid
}
