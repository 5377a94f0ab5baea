package pricing

import (
	"github.com/shopspring/decimal"

	"trailercraft-co/models"
)

// Financing estimate parameters. One amortization formula is used for every
// term so the 48/60/72 month figures stay mutually consistent.
const annualRate = 0.07

// FinancingTerms are the terms surfaced on the financial step.
var FinancingTerms = []int{48, 60, 72}

// EstimateTerms computes the amortized monthly payment for each financing term
// at the fixed reference APR:
//
//	payment = P * r / (1 - (1+r)^-n), r = APR/12
//
// Rounded to whole dollars. These sit alongside the breakdown's MonthlyPayment
// (a plain total/60 reference figure) and are never persisted.
func EstimateTerms(total int64) []models.FinancingEstimate {
	principal := decimal.NewFromInt(total)
	monthlyRate := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(12))
	one := decimal.NewFromInt(1)

	estimates := make([]models.FinancingEstimate, 0, len(FinancingTerms))
	for _, term := range FinancingTerms {
		growth := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(term)))
		denominator := one.Sub(one.Div(growth))
		payment := principal.Mul(monthlyRate).Div(denominator)
		estimates = append(estimates, models.FinancingEstimate{
			TermMonths:     term,
			MonthlyPayment: payment.Round(0).IntPart(),
		})
	}
	return estimates
}
