// Package landedcost computes the landed cost of a shipment from its declared
// value and quantity using fixed duty, tax and insurance rates plus flat fees.
package landedcost

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	dutyRate      = decimal.RequireFromString("0.085")
	taxRate       = decimal.RequireFromString("0.12")
	insuranceRate = decimal.RequireFromString("0.005")

	shippingFee  = decimal.NewFromInt(450)
	brokerageFee = decimal.NewFromInt(150)
	otherFees    = decimal.NewFromInt(75)

	hundred = decimal.NewFromInt(100)

	maxQuantity = decimal.NewFromInt(math.MaxInt64)
)

// Bounds on parsed numbers. Values outside them are treated as invalid so a
// huge exponent cannot force arbitrary-precision rescaling.
const (
	maxDigits   = 30
	maxExponent = 30
)

// RawInput holds the calculator form values exactly as submitted.
type RawInput struct {
	ProductValue       string `json:"productValue"`
	Quantity           string `json:"quantity"`
	HSCode             string `json:"hsCode"`
	OriginCountry      string `json:"originCountry"`
	DestinationCountry string `json:"destinationCountry"`
	ShippingMode       string `json:"shippingMode"`
	Weight             string `json:"weight"`
	Dimensions         string `json:"dimensions"`
}

// Input is a parsed calculator request. Only ProductValue and Quantity take
// part in the computation; the remaining fields are carried for display.
type Input struct {
	ProductValue       decimal.Decimal
	Quantity           int64
	HSCode             string
	OriginCountry      string
	DestinationCountry string
	ShippingMode       string
	Weight             string
	Dimensions         string
}

// Breakdown is the derived cost of a shipment.
type Breakdown struct {
	ProductValue    decimal.Decimal
	Duties          decimal.Decimal
	Taxes           decimal.Decimal
	Shipping        decimal.Decimal
	Insurance       decimal.Decimal
	Brokerage       decimal.Decimal
	Other           decimal.Decimal
	TotalLandedCost decimal.Decimal
}

// Segment is one slice of the cost distribution chart.
type Segment struct {
	Name  string
	Value decimal.Decimal
	Color string
}

// ParseInput converts raw form values into an Input. It never fails: an empty,
// non-numeric, negative or out-of-range product value becomes 0 and a quantity
// below 1 or above math.MaxInt64 becomes 1. Fractional quantities are truncated.
func ParseInput(raw RawInput) Input {
	in := Input{
		ProductValue:       decimal.Zero,
		Quantity:           1,
		HSCode:             strings.TrimSpace(raw.HSCode),
		OriginCountry:      strings.TrimSpace(raw.OriginCountry),
		DestinationCountry: strings.TrimSpace(raw.DestinationCountry),
		ShippingMode:       strings.TrimSpace(raw.ShippingMode),
		Weight:             strings.TrimSpace(raw.Weight),
		Dimensions:         strings.TrimSpace(raw.Dimensions),
	}

	if v, ok := parseBounded(raw.ProductValue); ok && v.IsPositive() {
		in.ProductValue = v
	}
	if q, ok := parseBounded(raw.Quantity); ok && !q.GreaterThan(maxQuantity) {
		if n := q.IntPart(); n >= 1 {
			in.Quantity = n
		}
	}

	return in
}

// parseBounded parses s as a decimal within maxDigits and maxExponent.
func parseBounded(s string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	if exp := v.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, false
	}
	if v.NumDigits() > maxDigits {
		return decimal.Zero, false
	}
	return v, true
}

// Calculate returns the landed cost breakdown for in. It is pure: the same
// input always yields the same breakdown.
func Calculate(in Input) Breakdown {
	totalValue := in.ProductValue.Mul(decimal.NewFromInt(in.Quantity))

	duties := totalValue.Mul(dutyRate)
	taxes := totalValue.Mul(taxRate)
	insurance := totalValue.Mul(insuranceRate)

	total := totalValue.
		Add(duties).
		Add(taxes).
		Add(shippingFee).
		Add(insurance).
		Add(brokerageFee).
		Add(otherFees)

	return Breakdown{
		ProductValue:    totalValue,
		Duties:          duties,
		Taxes:           taxes,
		Shipping:        shippingFee,
		Insurance:       insurance,
		Brokerage:       brokerageFee,
		Other:           otherFees,
		TotalLandedCost: total,
	}
}

// Fees is the sum of brokerage and other fees.
func (b Breakdown) Fees() decimal.Decimal {
	return b.Brokerage.Add(b.Other)
}

// OverheadPercent is how much the landed cost exceeds the product value, as a
// percentage of the product value. It is zero when the product value is zero.
func (b Breakdown) OverheadPercent() decimal.Decimal {
	if b.ProductValue.IsZero() {
		return decimal.Zero
	}
	return b.TotalLandedCost.Sub(b.ProductValue).Div(b.ProductValue).Mul(hundred)
}

// Segments returns the chart slices in display order.
func (b Breakdown) Segments() []Segment {
	return []Segment{
		{Name: "Product Value", Value: b.ProductValue, Color: "#3B82F6"},
		{Name: "Duties", Value: b.Duties, Color: "#EF4444"},
		{Name: "Taxes", Value: b.Taxes, Color: "#F59E0B"},
		{Name: "Shipping", Value: b.Shipping, Color: "#10B981"},
		{Name: "Insurance", Value: b.Insurance, Color: "#8B5CF6"},
		{Name: "Fees", Value: b.Fees(), Color: "#6B7280"},
	}
}
