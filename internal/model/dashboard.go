package model

// StatCard is one headline figure on a dashboard.
type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Detail string `json:"detail"`
}

// RevenuePoint is one month of the admin revenue chart.
type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// Activity is an entry in the admin recent-activities feed.
type Activity struct {
	Message string `json:"message"`
	Time    string `json:"time"`
}
