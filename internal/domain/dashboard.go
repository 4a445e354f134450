package domain

// ItemFilter narrows the item listing. Empty fields match everything.
type ItemFilter struct {
	Search        string `json:"search"`
	MaterialGroup string `json:"material_group"`
	MaterialType  string `json:"material_type"`
	DateFrom      string `json:"date_from"` // canonical YYYY-MM-DD
	DateTo        string `json:"date_to"`
}

// VendorFilter narrows the all-vendors listing.
type VendorFilter struct {
	Search string `json:"search"`
}

// DashboardSnapshot is the aggregated payload served to the dashboard shell.
type DashboardSnapshot struct {
	Items       []ItemGroup   `json:"items"`
	Vendors     []VendorGroup `json:"vendors"`
	RecordCount int           `json:"record_count"`
	LastRefresh string        `json:"last_refresh"`
}

// PeriodChange reports a period-over-period delta for one metric.
type PeriodChange struct {
	Key        string  `json:"key"`
	Metric     string  `json:"metric"`
	ChangePct  float64 `json:"change_pct"`
	Value      float64 `json:"value"`
	PrevValue  float64 `json:"prev_value"`
}
