package settings

// Settings is a singleton record, read and written wholesale.
type Settings struct {
	Theme                 string `json:"theme"`
	ItemsPerPage          int    `json:"itemsPerPage"`
	NotifyNewOrder        bool   `json:"notifyNewOrder"`
	NotifyDailyReport     bool   `json:"notifyDailyReport"`
	SessionTimeoutMinutes int    `json:"sessionTimeoutMinutes"`
	CurrencySymbol        string `json:"currencySymbol"`
}

// Defaults is the documented default record, served until an update is
// persisted and restored by a reset.
func Defaults() Settings {
	return Settings{
		Theme:                 "light",
		ItemsPerPage:          20,
		NotifyNewOrder:        true,
		NotifyDailyReport:     false,
		SessionTimeoutMinutes: 60,
		CurrencySymbol:        "₹",
	}
}
