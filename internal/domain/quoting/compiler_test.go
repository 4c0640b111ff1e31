package quoting

import (
	"math"
	"strings"
	"testing"
	"time"

	"veggiequote/internal/domain/entities"
)

var testCatalog = []entities.PriceItem{
	{ID: "1", Name: "Tomato", UnitPrice: 40, Unit: entities.UnitKg},
	{ID: "2", Name: "Coriander", UnitPrice: 20, Unit: entities.UnitBunch},
	{ID: "3", Name: "Turmeric", UnitPrice: 0.04, Unit: entities.UnitG},
}

var allOn = entities.MessageSettings{
	HeaderText:   "Order Estimate",
	FooterText:   "Thank you!",
	ShowDate:     true,
	ShowCustomer: true,
	ShowTotal:    true,
}

func compileAt(t *testing.T, parsed entities.ParsedOrder, settings entities.MessageSettings) entities.Quote {
	t.Helper()
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	return Compile(parsed, testCatalog, settings, now)
}

func TestCompile_Matching(t *testing.T) {
	t.Run("exact unit match multiplies directly", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{Items: []entities.ParsedOrderLine{
			{OriginalName: "tomato", Quantity: 2, Unit: entities.UnitKg},
		}}, allOn)

		if len(q.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(q.Items))
		}
		it := q.Items[0]
		if it.MatchedItemID != "1" {
			t.Fatalf("expected case-insensitive match, got %+v", it)
		}
		if it.CalculatedPrice != 80 {
			t.Fatalf("expected price 80, got %v", it.CalculatedPrice)
		}
		if q.Total != 80 {
			t.Fatalf("expected total 80, got %d", q.Total)
		}
	})

	t.Run("unmatched line is kept at zero cost", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{Items: []entities.ParsedOrderLine{
			{OriginalName: "Dragonfruit", Quantity: 3, Unit: entities.UnitPc},
		}}, allOn)

		it := q.Items[0]
		if it.MatchedItemID != "" || it.CalculatedPrice != 0 {
			t.Fatalf("expected no match, got %+v", it)
		}
		if !strings.Contains(q.RawText, "• Dragonfruit (3pc): *N/A*") {
			t.Fatalf("expected N/A line, got %q", q.RawText)
		}
	})

	t.Run("input order preserved", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{Items: []entities.ParsedOrderLine{
			{OriginalName: "Coriander", Quantity: 1, Unit: entities.UnitBunch},
			{OriginalName: "Tomato", Quantity: 1, Unit: entities.UnitKg},
		}}, allOn)

		if q.Items[0].OriginalName != "Coriander" || q.Items[1].OriginalName != "Tomato" {
			t.Fatalf("expected stable item order, got %+v", q.Items)
		}
		if strings.Index(q.RawText, "Coriander") > strings.Index(q.RawText, "Tomato") {
			t.Fatalf("expected rendered order to follow input order: %q", q.RawText)
		}
	})
}

func TestCompile_UnitReconciliation(t *testing.T) {
	t.Run("g to kg", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{Items: []entities.ParsedOrderLine{
			{OriginalName: "Tomato", Quantity: 500, Unit: entities.UnitG},
		}}, allOn)
		if q.Items[0].CalculatedPrice != 20 {
			t.Fatalf("expected 500g at 40/kg = 20, got %v", q.Items[0].CalculatedPrice)
		}
	})

	t.Run("kg to g", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{Items: []entities.ParsedOrderLine{
			{OriginalName: "Turmeric", Quantity: 2, Unit: entities.UnitKg},
		}}, allOn)
		if q.Items[0].CalculatedPrice != 80 {
			t.Fatalf("expected 2000g at 0.04/g = 80, got %v", q.Items[0].CalculatedPrice)
		}
	})

	t.Run("other mismatches are not converted", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{Items: []entities.ParsedOrderLine{
			{OriginalName: "Tomato", Quantity: 2, Unit: entities.UnitPc},
		}}, allOn)
		if q.Items[0].CalculatedPrice != 80 {
			t.Fatalf("expected raw quantity times unit price, got %v", q.Items[0].CalculatedPrice)
		}
	})
}

func TestCompile_Totals(t *testing.T) {
	t.Run("total is ceil of exact sum", func(t *testing.T) {
		catalog := []entities.PriceItem{
			{ID: "a", Name: "A", UnitPrice: 10.2, Unit: entities.UnitPc},
			{ID: "b", Name: "B", UnitPrice: 5.1, Unit: entities.UnitPc},
			{ID: "c", Name: "C", UnitPrice: 0.05, Unit: entities.UnitPc},
		}
		now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
		q := Compile(entities.ParsedOrder{Items: []entities.ParsedOrderLine{
			{OriginalName: "A", Quantity: 1, Unit: entities.UnitPc},
			{OriginalName: "B", Quantity: 1, Unit: entities.UnitPc},
			{OriginalName: "C", Quantity: 1, Unit: entities.UnitPc},
		}}, catalog, allOn, now)

		if q.Total != 16 {
			t.Fatalf("expected ceil(15.35) = 16, got %d", q.Total)
		}
	})

	t.Run("per-line display truncates, total does not", func(t *testing.T) {
		catalog := []entities.PriceItem{{ID: "a", Name: "A", UnitPrice: 10.6, Unit: entities.UnitPc}}
		now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
		q := Compile(entities.ParsedOrder{Items: []entities.ParsedOrderLine{
			{OriginalName: "A", Quantity: 1, Unit: entities.UnitPc},
		}}, catalog, allOn, now)

		if !strings.Contains(q.RawText, "*₹10*") {
			t.Fatalf("expected floor-truncated line price, got %q", q.RawText)
		}
		if q.Total != 11 {
			t.Fatalf("expected ceil total 11, got %d", q.Total)
		}
	})

	t.Run("defensive quantities cost zero", func(t *testing.T) {
		for _, bad := range []float64{0, -2, math.NaN(), math.Inf(1)} {
			q := compileAt(t, entities.ParsedOrder{Items: []entities.ParsedOrderLine{
				{OriginalName: "Tomato", Quantity: bad, Unit: entities.UnitKg},
			}}, allOn)
			if q.Items[0].CalculatedPrice != 0 {
				t.Fatalf("quantity %v: expected zero cost, got %v", bad, q.Items[0].CalculatedPrice)
			}
			if q.Total != 0 {
				t.Fatalf("quantity %v: expected zero total, got %d", bad, q.Total)
			}
		}
	})

	t.Run("empty order compiles", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{}, allOn)
		if q.Total != 0 || len(q.Items) != 0 {
			t.Fatalf("expected empty zero quote, got %+v", q)
		}
		if q.Status != entities.QuoteStatusDraft {
			t.Fatalf("expected draft status, got %s", q.Status)
		}
	})
}

func TestCompile_RenderTemplate(t *testing.T) {
	t.Run("full template", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{
			Items: []entities.ParsedOrderLine{
				{OriginalName: "Tomato", Quantity: 2, Unit: entities.UnitKg},
				{OriginalName: "Dragonfruit", Quantity: 1, Unit: entities.UnitPc},
			},
			CustomerName: "Ravi",
		}, allOn)

		want := "*Order Estimate*\n" +
			"Date: 5 Mar\n" +
			"Customer: *Ravi*\n" +
			"------------------------\n" +
			"• Tomato (2kg): *₹80*\n" +
			"• Dragonfruit (1pc): *N/A*\n" +
			"------------------------\n" +
			"*Total Amount: ₹80*\n" +
			"------------------------\n" +
			"Thank you!"
		if q.RawText != want {
			t.Fatalf("rendered text mismatch:\nwant %q\ngot  %q", want, q.RawText)
		}
	})

	t.Run("blocks drop with their settings", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{
			Items:        []entities.ParsedOrderLine{{OriginalName: "Tomato", Quantity: 1, Unit: entities.UnitKg}},
			CustomerName: "Ravi",
		}, entities.MessageSettings{})

		want := "------------------------\n" +
			"• Tomato (1kg): *₹40*\n" +
			"------------------------\n"
		if q.RawText != want {
			t.Fatalf("rendered text mismatch:\nwant %q\ngot  %q", want, q.RawText)
		}
	})

	t.Run("customer line needs both setting and name", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{
			Items: []entities.ParsedOrderLine{{OriginalName: "Tomato", Quantity: 1, Unit: entities.UnitKg}},
		}, allOn)
		if strings.Contains(q.RawText, "Customer:") {
			t.Fatalf("expected no customer line without a name, got %q", q.RawText)
		}
	})

	t.Run("fractional quantity renders minimally", func(t *testing.T) {
		q := compileAt(t, entities.ParsedOrder{
			Items: []entities.ParsedOrderLine{{OriginalName: "Tomato", Quantity: 0.5, Unit: entities.UnitKg}},
		}, allOn)
		if !strings.Contains(q.RawText, "(0.5kg)") {
			t.Fatalf("expected 0.5kg, got %q", q.RawText)
		}
	})
}
