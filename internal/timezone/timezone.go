package timezone

import "time"

const DefaultTimezone = "America/Edmonton"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Naive strips the zone from t: the wall-clock reading is kept and
// re-labelled UTC. Stored and compared timestamps are always naive,
// while "now" is always read in the shop's configured zone first.
func Naive(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		time.UTC,
	)
}

func NaiveNowIn(tz string) time.Time {
	return Naive(NowIn(tz))
}
