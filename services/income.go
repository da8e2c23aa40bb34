package services

import (
	"github.com/shopspring/decimal"

	"github.com/business-launch/modules-api/models"
)

// Calendar conversion constants. Each period is anchored on the edited field
// and the other three are derived directly from it, never from each other, so
// repeated edits to different fields are lossy on purpose.
var (
	daysPerWeek   = decimal.NewFromInt(7)
	daysPerMonth  = decimal.NewFromInt(30)
	daysPerYear   = decimal.NewFromInt(365)
	weeksPerMonth = decimal.NewFromInt(4)
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
)

// NormalizeIncome recomputes all four income figures from a single edited
// period. Only the creation form goes through this; edits to an existing
// module write raw figures without recomputation.
func NormalizeIncome(period models.Period, value float64) models.Income {
	v := decimal.NewFromFloat(value)

	var daily, weekly, monthly, yearly decimal.Decimal
	switch period {
	case models.PeriodDaily:
		daily = v
		weekly = v.Mul(daysPerWeek)
		monthly = v.Mul(daysPerMonth)
		yearly = v.Mul(daysPerYear)
	case models.PeriodWeekly:
		daily = v.Div(daysPerWeek)
		weekly = v
		monthly = v.Mul(weeksPerMonth)
		yearly = v.Mul(weeksPerYear)
	case models.PeriodMonthly:
		daily = v.Div(daysPerMonth)
		weekly = v.Div(weeksPerMonth)
		monthly = v
		yearly = v.Mul(monthsPerYear)
	case models.PeriodYearly:
		daily = v.Div(daysPerYear)
		weekly = v.Div(weeksPerYear)
		monthly = v.Div(monthsPerYear)
		yearly = v
	default:
		return models.Income{}
	}

	return models.Income{
		Daily:   round2(daily),
		Weekly:  round2(weekly),
		Monthly: round2(monthly),
		Yearly:  round2(yearly),
	}
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
