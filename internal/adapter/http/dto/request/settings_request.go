package request

import (
	"strings"

	"veggiequote/internal/domain/entities"
)

type MessageSettingsRequest struct {
	HeaderText   string `json:"header_text"`
	FooterText   string `json:"footer_text"`
	ShowDate     bool   `json:"show_date"`
	ShowCustomer bool   `json:"show_customer"`
	ShowTotal    bool   `json:"show_total"`
}

type APIConfigRequest struct {
	Enabled       bool   `json:"enabled"`
	AccessToken   string `json:"access_token"`
	PhoneNumberID string `json:"phone_number_id"`
}

type AutomationSettingsRequest struct {
	AutoRedirect bool             `json:"auto_redirect"`
	InstantSend  bool             `json:"instant_send"`
	API          APIConfigRequest `json:"api"`
}

// SettingsRequest replaces the whole settings aggregate; partial updates are
// not supported, clients send the full document back.
type SettingsRequest struct {
	Message    MessageSettingsRequest    `json:"message"`
	Automation AutomationSettingsRequest `json:"automation"`
}

func (r SettingsRequest) ToSettings() entities.Settings {
	return entities.Settings{
		Message: entities.MessageSettings{
			HeaderText:   r.Message.HeaderText,
			FooterText:   r.Message.FooterText,
			ShowDate:     r.Message.ShowDate,
			ShowCustomer: r.Message.ShowCustomer,
			ShowTotal:    r.Message.ShowTotal,
		},
		Automation: entities.AutomationSettings{
			AutoRedirect: r.Automation.AutoRedirect,
			InstantSend:  r.Automation.InstantSend,
			API: entities.APIConfig{
				Enabled:       r.Automation.API.Enabled,
				AccessToken:   strings.TrimSpace(r.Automation.API.AccessToken),
				PhoneNumberID: strings.TrimSpace(r.Automation.API.PhoneNumberID),
			},
		},
	}
}
