package model

// AdminStats is the dashboard summary. Counts may be estimates, revenue is exact.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// EntityCounts are the approximate collection sizes behind AdminStats.
type EntityCounts struct {
	Users     int64 `json:"users"`
	MenuItems int64 `json:"menuItems"`
	Orders    int64 `json:"orders"`
}

// CategoryStat is one row of the sold-items breakdown.
type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
