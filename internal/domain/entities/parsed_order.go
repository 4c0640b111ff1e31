package entities

// ParsedOrderLine is one recognized line of a scanned order. All fields are
// untrusted free text produced upstream; the compiler tolerates quantities
// that are zero, negative or non-finite by pricing the line at 0.
type ParsedOrderLine struct {
	OriginalName string  `json:"original_name"`
	Quantity     float64 `json:"quantity"`
	Unit         Unit    `json:"unit"`
}

// ParsedOrder is the output of the external image-recognition service.
// Items may be empty and the customer fields may be missing.
type ParsedOrder struct {
	Items               []ParsedOrderLine `json:"items"`
	CustomerName        string            `json:"customer_name,omitempty"`
	CustomerPhoneNumber string            `json:"customer_phone_number,omitempty"`
}
