package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"planvida/internal/models"
)

// DateProfitLoss is the signed financial result for one calendar date.
type DateProfitLoss struct {
	Date       models.DateOnly `json:"date"`
	ProfitLoss decimal.Decimal `json:"profit_loss"`
}

// ProfitLoss is the single canonical profit/loss formula: income-like sums
// minus cost-like sums. Every consumer (the JSON aggregate, the report row,
// the seeded monthly item) goes through this function.
func ProfitLoss(receitas, rendaExtra, custos, estudos decimal.Decimal) decimal.Decimal {
	return receitas.Add(rendaExtra).Sub(custos).Sub(estudos)
}

// TotalsByCategory sums item values per category. Only categories that occur
// at least once appear as keys.
func TotalsByCategory(items []models.PlanItem) map[models.Category]decimal.Decimal {
	totals := make(map[models.Category]decimal.Decimal)
	for _, item := range items {
		totals[item.Category] = totals[item.Category].Add(item.Value)
	}
	return totals
}

// ProfitLossByDate groups items by exact date and computes the profit/loss
// for every date that appears in the income, extra-income, or cost
// categories. A date with only cost entries still appears, with a negative
// result. The series is sorted ascending by date.
func ProfitLossByDate(items []models.PlanItem) []DateProfitLoss {
	type ledger struct {
		receitas   decimal.Decimal
		rendaExtra decimal.Decimal
		custos     decimal.Decimal
		estudos    decimal.Decimal
	}

	byDate := make(map[string]ledger)
	dates := make(map[string]models.DateOnly)

	for _, item := range items {
		var relevant bool
		key := item.Date.String()
		l := byDate[key]
		switch item.Category {
		case models.CategoryReceitas:
			l.receitas = l.receitas.Add(item.Value)
			relevant = true
		case models.CategoryRendaExtra:
			l.rendaExtra = l.rendaExtra.Add(item.Value)
			relevant = true
		case models.CategoryCustos:
			l.custos = l.custos.Add(item.Value)
			relevant = true
		case models.CategoryEstudos:
			l.estudos = l.estudos.Add(item.Value)
			relevant = true
		}
		if relevant {
			byDate[key] = l
			dates[key] = item.Date
		}
	}

	keys := make([]string, 0, len(byDate))
	for key := range byDate {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]DateProfitLoss, 0, len(keys))
	for _, key := range keys {
		l := byDate[key]
		result = append(result, DateProfitLoss{
			Date:       dates[key],
			ProfitLoss: ProfitLoss(l.receitas, l.rendaExtra, l.custos, l.estudos),
		})
	}
	return result
}
