package models

import "github.com/shopspring/decimal"

// Residency and Studies are stored lowercase in the CreditCosts table; the
// enum values double as the database keys.
type Residency string

type Studies string

const (
	Resident    Residency = "resident"
	NonResident Residency = "nonresident"
)

const (
	Undergraduate Studies = "undergraduate"
	Graduate      Studies = "graduate"
)

// Label returns the display form used in the results table.
func (r Residency) Label() string {
	if r == Resident {
		return "Resident"
	}
	return "Non-Resident"
}

// Label returns the display form used in the results table.
func (s Studies) Label() string {
	if s == Graduate {
		return "Graduate"
	}
	return "Undergraduate"
}

// TuitionRates is one row of the CreditCosts table, keyed by (Studies,
// Residency). Read-only reference data.
type TuitionRates struct {
	CreditsCost     decimal.Decimal
	NonresidencyFee decimal.Decimal
}

// OrientationFee is the single row of the orientation_fee table.
type OrientationFee struct {
	Fee decimal.Decimal
}

// UserTuition is one stored calculation, one row per (FirstName, LastName).
type UserTuition struct {
	FirstName   string
	LastName    string
	TuitionCost decimal.Decimal
}

// TotalTuition computes creditsCost*numCredits + nonresidencyFee +
// orientationFee with exact decimal arithmetic. No rounding happens here;
// formatting is left to the view.
func TotalTuition(rates TuitionRates, orientationFee decimal.Decimal, numCredits uint8) decimal.Decimal {
	return rates.CreditsCost.
		Mul(decimal.NewFromInt(int64(numCredits))).
		Add(rates.NonresidencyFee).
		Add(orientationFee)
}
