package analytics

// Overview is the dashboard overview payload. Arrays are always present
// (possibly empty) and counts default to zero.
type Overview struct {
	TotalEventsToday     int            `json:"totalEventsToday"`
	UniqueUsersToday     int            `json:"uniqueUsersToday"`
	TotalEventsThisWeek  int            `json:"totalEventsThisWeek"`
	TotalEventsThisMonth int            `json:"totalEventsThisMonth"`
	TopEvents            []EventCount   `json:"topEvents"`
	DailyEvents          []DailyCount   `json:"dailyEvents"`
	MonthlyUsers         []MonthlyUsers `json:"monthlyUsers"`
}

// EventCount is one event name with its frequency.
type EventCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyCount is the event count for one calendar date (YYYY-MM-DD).
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// MonthlyUsers is the distinct-user count for one calendar month,
// labeled with the 3-letter month abbreviation.
type MonthlyUsers struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

// UserMetrics is the GET /api/analytics/users payload.
type UserMetrics struct {
	TotalUniqueUsers int `json:"totalUniqueUsers"`
}

// NewOverview returns an Overview with non-nil slices.
func NewOverview() *Overview {
	return &Overview{
		TopEvents:    []EventCount{},
		DailyEvents:  []DailyCount{},
		MonthlyUsers: []MonthlyUsers{},
	}
}
