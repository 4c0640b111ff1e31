// Package quoting holds the pure quote compiler: catalog matching, unit
// reconciliation and deterministic message rendering. No I/O happens here;
// identity and persistence belong to the use case layer.
package quoting

import (
	"math"
	"strconv"
	"strings"
	"time"

	"veggiequote/internal/domain/entities"
)

const divider = "------------------------\n"

// Compile prices a parsed order against a catalog snapshot and renders the
// outgoing message. It is total: missing matches, empty orders and bad
// quantities all produce a valid draft quote. The caller assigns the ID.
func Compile(parsed entities.ParsedOrder, catalog []entities.PriceItem, settings entities.MessageSettings, now time.Time) entities.Quote {
	items := make([]entities.OrderItem, 0, len(parsed.Items))
	var total float64

	for _, line := range parsed.Items {
		matched, ok := matchByName(catalog, line.OriginalName)

		var cost float64
		matchedID := ""
		if ok {
			matchedID = matched.ID
			cost = lineCost(line, matched)
		}
		total += cost

		items = append(items, entities.OrderItem{
			OriginalName:    line.OriginalName,
			MatchedItemID:   matchedID,
			Quantity:        line.Quantity,
			Unit:            line.Unit,
			CalculatedPrice: cost,
		})
	}

	roundedTotal := int64(math.Ceil(total))

	return entities.Quote{
		Timestamp:           now,
		Status:              entities.QuoteStatusDraft,
		Items:               items,
		Total:               roundedTotal,
		RawText:             renderMessage(items, roundedTotal, parsed.CustomerName, settings, now),
		CustomerName:        parsed.CustomerName,
		CustomerPhoneNumber: parsed.CustomerPhoneNumber,
	}
}

// matchByName finds the catalog entry whose name equals the recognized name
// under case-insensitive exact comparison. No fuzzy or partial matching;
// synonym mapping is the recognizer's job.
func matchByName(catalog []entities.PriceItem, name string) (entities.PriceItem, bool) {
	for _, item := range catalog {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return entities.PriceItem{}, false
}

// lineCost converts the parsed quantity into the catalog unit and applies
// the unit price. Only the g<->kg pair is ever converted; any other unit
// mismatch multiplies the raw quantity as-is.
func lineCost(line entities.ParsedOrderLine, matched entities.PriceItem) float64 {
	q := line.Quantity
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}

	switch {
	case line.Unit == entities.UnitG && matched.Unit == entities.UnitKg:
		q = q / 1000
	case line.Unit == entities.UnitKg && matched.Unit == entities.UnitG:
		q = q * 1000
	}

	return q * matched.UnitPrice
}

// renderMessage produces the outgoing text. The block order and exact
// characters are the wire contract toward WhatsApp; rendered messages must
// stay visually identical across versions.
func renderMessage(items []entities.OrderItem, total int64, customerName string, settings entities.MessageSettings, now time.Time) string {
	var b strings.Builder

	if settings.HeaderText != "" {
		b.WriteString("*" + settings.HeaderText + "*\n")
	}
	if settings.ShowDate {
		b.WriteString("Date: " + now.Format("2 Jan") + "\n")
	}
	if settings.ShowCustomer && customerName != "" {
		b.WriteString("Customer: *" + customerName + "*\n")
	}

	b.WriteString(divider)
	for _, item := range items {
		priceStr := "N/A"
		if item.CalculatedPrice > 0 {
			priceStr = "₹" + strconv.FormatInt(int64(math.Floor(item.CalculatedPrice)), 10)
		}
		b.WriteString("• " + item.OriginalName + " (" + formatQuantity(item.Quantity) + string(item.Unit) + "): *" + priceStr + "*\n")
	}
	b.WriteString(divider)

	if settings.ShowTotal {
		b.WriteString("*Total Amount: ₹" + strconv.FormatInt(total, 10) + "*\n")
		b.WriteString(divider)
	}

	if settings.FooterText != "" {
		b.WriteString(settings.FooterText)
	}

	return b.String()
}

// formatQuantity renders a quantity with no trailing zeros ("2", "0.5").
func formatQuantity(q float64) string {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return "0"
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}
