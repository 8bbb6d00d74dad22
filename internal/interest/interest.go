// Package interest computes month-compounded savings balances.
package interest

import "math"

const (
	monthsPerYear = 12
	percent       = 100.0
)

// Plan is a savings plan: an opening balance, an annual interest rate in
// percent, a deposit made at the start of every month, and a term.
type Plan struct {
	Principal      float64
	RatePercent    float64
	MonthlyDeposit float64
	Years          int
}

// Year is one row of a year-end schedule.
type Year struct {
	Number   int
	Balance  float64
	Interest float64
}

// Balance returns the value of a plan after years, compounding monthly with
// each deposit made at the start of its month.
func Balance(principal, ratePercent, monthlyDeposit float64, years int) float64 {
	months := float64(years * monthsPerYear)
	rate := ratePercent / percent / monthsPerYear
	if rate == 0 {
		return principal + monthlyDeposit*months
	}
	growth := math.Pow(1+rate, months)
	deposits := monthlyDeposit*(math.Pow(1+rate, months+1)-1)/rate - monthlyDeposit
	return principal*growth + deposits
}

// Schedule returns the balance and the interest earned for every year of
// p. Without deposits the monthly deposit is treated as zero.
func Schedule(p Plan, withDeposits bool) []Year {
	deposit := 0.0
	if withDeposits {
		deposit = p.MonthlyDeposit
	}
	annual := deposit * monthsPerYear

	years := make([]Year, 0, max(0, p.Years))
	last := p.Principal
	for n := 1; n <= p.Years; n++ {
		balance := Balance(p.Principal, p.RatePercent, deposit, n)
		years = append(years, Year{
			Number:   n,
			Balance:  balance,
			Interest: balance - (last + annual),
		})
		last = balance
	}
	return years
}
