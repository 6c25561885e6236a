package models

import (
	"strconv"

	"github.com/epeers/fundmanager/internal/util"
)

// Category is the asset class a fund invests in
type Category string

const (
	CategoryEquity      Category = "Equity"
	CategoryDebt        Category = "Debt"
	CategoryHybrid      Category = "Hybrid"
	CategoryMoneyMarket Category = "Money Market"
)

// RiskLevel is the advertised risk profile of a fund
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// Categories and RiskLevels list the dropdown choices in display order.
// The empty value is always allowed in addition to these.
var (
	Categories = []Category{CategoryEquity, CategoryDebt, CategoryHybrid, CategoryMoneyMarket}
	RiskLevels = []RiskLevel{RiskLow, RiskModerate, RiskHigh}
)

// FieldNames is the ordered field list shared by the form and the fund table.
// Table columns come from here, not from whatever the backend returns.
var FieldNames = []string{
	"fundId",
	"fundName",
	"category",
	"riskLevel",
	"aum",
	"expenseRatio",
	"nav",
	"launchDate",
	"description",
}

// Fund is a mutual fund record as returned by the backend
type Fund struct {
	FundID       int64      `json:"fundId"`
	FundName     string     `json:"fundName"`
	Category     Category   `json:"category"`
	RiskLevel    RiskLevel  `json:"riskLevel"`
	AUM          *float64   `json:"aum"`
	ExpenseRatio *float64   `json:"expenseRatio"`
	NAV          *float64   `json:"nav"`
	LaunchDate   LaunchDate `json:"launchDate"`
	Description  string     `json:"description"`
}

// Draft is the in-progress form. Every field stays text until submission.
type Draft struct {
	FundID       string `json:"fundId" form:"fundId" validate:"notblank"`
	FundName     string `json:"fundName" form:"fundName" validate:"notblank"`
	Category     string `json:"category" form:"category"`
	RiskLevel    string `json:"riskLevel" form:"riskLevel"`
	AUM          string `json:"aum" form:"aum"`
	ExpenseRatio string `json:"expenseRatio" form:"expenseRatio"`
	NAV          string `json:"nav" form:"nav"`
	LaunchDate   string `json:"launchDate" form:"launchDate"`
	Description  string `json:"description" form:"description"`
}

// Draft converts a record into form text: numbers become text, missing
// numbers become empty.
func (f Fund) Draft() Draft {
	return Draft{
		FundID:       strconv.FormatInt(f.FundID, 10),
		FundName:     f.FundName,
		Category:     string(f.Category),
		RiskLevel:    string(f.RiskLevel),
		AUM:          optionalText(f.AUM),
		ExpenseRatio: optionalText(f.ExpenseRatio),
		NAV:          optionalText(f.NAV),
		LaunchDate:   string(f.LaunchDate),
		Description:  f.Description,
	}
}

// Values returns the draft's fields in FieldNames order
func (d Draft) Values() []string {
	return []string{
		d.FundID,
		d.FundName,
		d.Category,
		d.RiskLevel,
		d.AUM,
		d.ExpenseRatio,
		d.NAV,
		d.LaunchDate,
		d.Description,
	}
}

func optionalText(v *float64) string {
	if v == nil {
		return ""
	}
	return util.FormatNumber(*v)
}
