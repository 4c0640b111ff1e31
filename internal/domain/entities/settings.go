package entities

// MessageSettings controls only the rendered text of a quote, never its
// pricing.
type MessageSettings struct {
	HeaderText   string `json:"header_text"`
	FooterText   string `json:"footer_text"`
	ShowDate     bool   `json:"show_date"`
	ShowCustomer bool   `json:"show_customer"`
	ShowTotal    bool   `json:"show_total"`
}

// APIConfig holds the WhatsApp Cloud API credentials for the programmatic
// channel.
type APIConfig struct {
	Enabled       bool   `json:"enabled"`
	AccessToken   string `json:"access_token"`
	PhoneNumberID string `json:"phone_number_id"`
}

// AutomationSettings governs the send orchestrator only; orthogonal to
// MessageSettings.
type AutomationSettings struct {
	AutoRedirect bool      `json:"auto_redirect"`
	InstantSend  bool      `json:"instant_send"`
	API          APIConfig `json:"api"`
}

// Settings is the persisted configuration aggregate (single item).
type Settings struct {
	Message    MessageSettings    `json:"message"`
	Automation AutomationSettings `json:"automation"`
}

// DefaultSettings are applied when nothing has been stored yet.
func DefaultSettings() Settings {
	return Settings{
		Message: MessageSettings{
			HeaderText:   "🧾 Vegetable Order Estimate",
			FooterText:   "Please confirm your order. Thank you! 🙏",
			ShowDate:     true,
			ShowCustomer: true,
			ShowTotal:    true,
		},
		Automation: AutomationSettings{
			AutoRedirect: false,
			InstantSend:  false,
		},
	}
}

// DefaultCatalog is the seed price list used until the vendor edits it.
func DefaultCatalog() []PriceItem {
	return []PriceItem{
		{ID: "1", Name: "Tomato", UnitPrice: 40, Unit: UnitKg},
		{ID: "2", Name: "Potato", UnitPrice: 30, Unit: UnitKg},
		{ID: "3", Name: "Onion", UnitPrice: 35, Unit: UnitKg},
		{ID: "4", Name: "Coriander", UnitPrice: 20, Unit: UnitBunch},
		{ID: "5", Name: "Chilli", UnitPrice: 80, Unit: UnitKg},
		{ID: "6", Name: "Carrot", UnitPrice: 60, Unit: UnitKg},
		{ID: "7", Name: "Cucumber", UnitPrice: 40, Unit: UnitKg},
		{ID: "8", Name: "Cauliflower", UnitPrice: 50, Unit: UnitPc},
		{ID: "9", Name: "Cabbage", UnitPrice: 40, Unit: UnitPc},
		{ID: "10", Name: "Lemon", UnitPrice: 5, Unit: UnitPc},
		{ID: "11", Name: "Ginger", UnitPrice: 120, Unit: UnitKg},
		{ID: "12", Name: "Garlic", UnitPrice: 150, Unit: UnitKg},
		{ID: "13", Name: "Spinach", UnitPrice: 25, Unit: UnitBunch},
		{ID: "14", Name: "Brinjal", UnitPrice: 50, Unit: UnitKg},
		{ID: "15", Name: "Lady Finger", UnitPrice: 60, Unit: UnitKg},
	}
}
