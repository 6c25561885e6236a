package models

import (
	"encoding/json"
	"math"

	"github.com/epeers/fundmanager/internal/util"
)

// Number is a JSON number that encodes NaN and ±Inf as null, so text that
// failed to coerce is still sent rather than rejected locally.
type Number float64

// MarshalJSON implements the json.Marshaler interface.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// FundPayload is the request body for add and update
type FundPayload struct {
	FundID       Number `json:"fundId"`
	FundName     string `json:"fundName"`
	Category     string `json:"category"`
	RiskLevel    string `json:"riskLevel"`
	AUM          Number `json:"aum"`
	ExpenseRatio Number `json:"expenseRatio"`
	NAV          Number `json:"nav"`
	LaunchDate   string `json:"launchDate"`
	Description  string `json:"description"`
}

// NewFundPayload coerces a draft for submission. fundId uses whole-text number
// conversion; aum, expenseRatio and nav use leading-decimal parsing with empty
// text sent as 0. Everything else is sent as typed.
func NewFundPayload(d Draft) FundPayload {
	return FundPayload{
		FundID:       Number(util.ToNumber(d.FundID)),
		FundName:     d.FundName,
		Category:     d.Category,
		RiskLevel:    d.RiskLevel,
		AUM:          decimalOrZero(d.AUM),
		ExpenseRatio: decimalOrZero(d.ExpenseRatio),
		NAV:          decimalOrZero(d.NAV),
		LaunchDate:   d.LaunchDate,
		Description:  d.Description,
	}
}

func decimalOrZero(s string) Number {
	if s == "" {
		return 0
	}
	return Number(util.ParseLeadingFloat(s))
}
