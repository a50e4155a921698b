package pricing

import "github.com/shopspring/decimal"

// Money represents a monetary value stored in minor units.
type Money = int64

// WeightUnit is the number of weight units a weighed product's unit price covers.
const WeightUnit = 100

var half = decimal.New(5, -1)

// RoundHalfUp converts an exact amount to the nearest minor unit, rounding
// halves toward positive infinity.
func RoundHalfUp(amount decimal.Decimal) Money {
	return amount.Add(half).Floor().IntPart()
}

// Marginal returns the rounded difference between two exact amounts.
func Marginal(from, to decimal.Decimal) Money {
	return RoundHalfUp(to.Sub(from))
}

// PerUnit returns the price of a single quantity unit. Weighed prices are
// quoted per WeightUnit.
func PerUnit(price Money, byWeight bool) decimal.Decimal {
	d := decimal.NewFromInt(price)
	if byWeight {
		return d.Div(decimal.NewFromInt(WeightUnit))
	}
	return d
}
