package report

// ItemSummary is one aggregation group: all line items sharing a name across
// the matching orders. TimesOrdered counts contributing line-item rows.
type ItemSummary struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Revenue      float64 `json:"revenue"`
	TimesOrdered int     `json:"timesOrdered"`
}

type CompletedItemsReport struct {
	Items           []ItemSummary `json:"items"`
	GrandTotal      float64       `json:"grandTotal"`
	OrderCount      int           `json:"orderCount"`
	UniqueCustomers int           `json:"uniqueCustomers"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardStats struct {
	ActiveByStatus []StatusCount `json:"activeByStatus"`
	OrdersToday    int           `json:"ordersToday"`
	RevenueToday   float64       `json:"revenueToday"`
}
