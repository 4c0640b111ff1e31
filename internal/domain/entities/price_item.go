package entities

// Unit is the unit of measure a produce item is quoted in.
//
// The recognizer upstream normalizes free-text units to this set, so the
// core never sees anything else on the happy path. Unknown units are kept
// as-is and simply never unit-converted.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitG     Unit = "g"
	UnitPc    Unit = "pc"
	UnitBunch Unit = "bunch"
	UnitDozen Unit = "dozen"
)

// PriceItem is one entry of the vendor's price catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Name uniqueness (case-insensitive) is assumed by the matcher, not
// enforced here.
type PriceItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Unit      Unit    `json:"unit"`
}
