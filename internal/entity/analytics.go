package entity

type ConversionStats struct {
	Total    int64 `json:"total"`
	Admitted int64 `json:"admitted"`
	Rate     int64 `json:"rate"` // percent, rounded
}

type ClassCount struct {
	Class string `json:"class"`
	Count int64  `json:"count"`
}

type DailyStat struct {
	Date     string `json:"date"` // YYYY-MM-DD (UTC)
	Count    int64  `json:"count"`
	Admitted int64  `json:"admitted"`
}

type AnalyticsReport struct {
	TotalLeads      int64           `json:"totalLeads"`
	PeriodLeads     int64           `json:"periodLeads"`
	ConversionStats ConversionStats `json:"conversionStats"`
	LeadsByClass    []ClassCount    `json:"leadsByClass"`
	DailyStats      []DailyStat     `json:"dailyStats"`
}
