package response

import (
	"veggiequote/internal/domain/entities"
)

type MessageSettingsResponse struct {
	HeaderText   string `json:"header_text"`
	FooterText   string `json:"footer_text"`
	ShowDate     bool   `json:"show_date"`
	ShowCustomer bool   `json:"show_customer"`
	ShowTotal    bool   `json:"show_total"`
}

type APIConfigResponse struct {
	Enabled       bool   `json:"enabled"`
	AccessToken   string `json:"access_token"`
	PhoneNumberID string `json:"phone_number_id"`
}

type AutomationSettingsResponse struct {
	AutoRedirect bool              `json:"auto_redirect"`
	InstantSend  bool              `json:"instant_send"`
	API          APIConfigResponse `json:"api"`
}

type SettingsResponse struct {
	Message    MessageSettingsResponse    `json:"message"`
	Automation AutomationSettingsResponse `json:"automation"`
}

func FromSettings(s entities.Settings) SettingsResponse {
	return SettingsResponse{
		Message: MessageSettingsResponse{
			HeaderText:   s.Message.HeaderText,
			FooterText:   s.Message.FooterText,
			ShowDate:     s.Message.ShowDate,
			ShowCustomer: s.Message.ShowCustomer,
			ShowTotal:    s.Message.ShowTotal,
		},
		Automation: AutomationSettingsResponse{
			AutoRedirect: s.Automation.AutoRedirect,
			InstantSend:  s.Automation.InstantSend,
			API: APIConfigResponse{
				Enabled:       s.Automation.API.Enabled,
				AccessToken:   s.Automation.API.AccessToken,
				PhoneNumberID: s.Automation.API.PhoneNumberID,
			},
		},
	}
}
