package schedule

import "time"

// Operating window: first slot starts 08:00, last slot starts 19:30.
const (
	OpeningHour   = 8
	ClosingHour   = 20
	SlotMinutes   = 30
	PublicDays    = 5
	DashboardDays = 7
)

const (
	DateLayout    = "2006-01-02"
	SlotKeyLayout = "2006-01-02 15:04"
	displayLayout = "01/02"
)

// Monday-first, matching how the shop reads its week.
var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type Day struct {
	Date    string `json:"date"`
	Display string `json:"display"`
	Weekday string `json:"weekday"`
}

type DateOption struct {
	Day
	IsToday bool `json:"is_today"`
}

// StartOfDay truncates t to midnight, keeping its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekdayName returns the Monday-first name for t's weekday.
func WeekdayName(t time.Time) string {
	return weekdayNames[mondayIndex(t)]
}

func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfWeek returns the Monday midnight of t's week.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -mondayIndex(t))
}

// Days enumerates today..today+n-1.
func Days(today time.Time, n int) []Day {
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		d := StartOfDay(today).AddDate(0, 0, i)
		days = append(days, Day{
			Date:    d.Format(DateLayout),
			Display: d.Format(displayLayout),
			Weekday: WeekdayName(d),
		})
	}
	return days
}

// DateOptions is the dashboard date picker: today plus the next n-1 days.
func DateOptions(today time.Time, n int) []DateOption {
	opts := make([]DateOption, 0, n)
	for i, d := range Days(today, n) {
		opts = append(opts, DateOption{Day: d, IsToday: i == 0})
	}
	return opts
}

// TimeSlots returns the static HH:MM labels of the operating window.
// It does not depend on the date.
func TimeSlots() []string {
	slots := make([]string, 0, (ClosingHour-OpeningHour)*60/SlotMinutes)
	day := time.Date(2000, 1, 1, OpeningHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, ClosingHour, 0, 0, 0, time.UTC)
	for cur := day; cur.Before(end); cur = cur.Add(SlotMinutes * time.Minute) {
		slots = append(slots, cur.Format("15:04"))
	}
	return slots
}

// SlotKey renders a slot start in the wire format used by both views.
func SlotKey(t time.Time) string {
	return t.Format(SlotKeyLayout)
}
