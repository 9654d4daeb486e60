package services

import (
	"time"

	"github.com/shopspring/decimal"

	"planvida/internal/models"
	"planvida/internal/report"
)

// The default-plan catalog. Seeded plans get every recurring entry once per
// month, milestone entries only in their tagged month, and one derived
// lucro_prejuizo entry per month computed from the recurring constants
// below, not re-aggregated from stored rows. All seeded dates use day 1.

type seedEntry struct {
	name  string
	value string
	meta  string
}

type seedMilestone struct {
	name  string
	month time.Month
	value string
	meta  string
}

var recurringSeed = map[models.Category][]seedEntry{
	models.CategoryReceitas: {
		{"Salário", "3500.00", "5000.00"},
	},
	models.CategoryRendaExtra: {
		{"Freelance", "0.00", "500.00"},
	},
	models.CategoryCustos: {
		{"Aluguel", "1200.00", "1000.00"},
		{"Alimentação", "800.00", "700.00"},
		{"Transporte", "300.00", "250.00"},
	},
	models.CategoryEstudos: {
		{"Cursos", "200.00", "300.00"},
		{"Livros", "80.00", "100.00"},
	},
	models.CategoryInvestimentos: {
		{"Reserva Inicial", "0.00", "1000.00"},
		{"Poupança", "150.00", "300.00"},
		{"Investimentos Planos", "200.00", "500.00"},
	},
	models.CategoryIntercambio: {
		{"Poupança Intercâmbio", "100.00", "400.00"},
	},
	models.CategoryPessoais: {
		{"Academia", "90.00", "90.00"},
		{"Lazer", "150.00", "200.00"},
	},
}

var milestoneSeed = map[models.Category][]seedMilestone{
	models.CategoryRealizacoes: {
		{"Reforma no Apartamento", time.March, "0.00", "15000.00"},
		{"Carro Novo", time.May, "0.00", "45000.00"},
		{"Casamento", time.June, "0.00", "30000.00"},
		{"Novo Apartamento", time.September, "0.00", "250000.00"},
		{"Filhos", time.October, "0.00", "20000.00"},
		{"Casa na Praia", time.December, "0.00", "350000.00"},
	},
	models.CategoryEmpresas: {
		{"Criar Empresas", time.February, "0.00", "50000.00"},
		{"Comprar Empresas", time.July, "0.00", "100000.00"},
	},
}

// seedProfitLoss is the monthly lucro_prejuizo value implied by the
// recurring catalog: sum(receitas) plus sum(renda_extra), minus sum(custos)
// and sum(estudos).
func seedProfitLoss() decimal.Decimal {
	return report.ProfitLoss(
		seedCategoryTotal(models.CategoryReceitas),
		seedCategoryTotal(models.CategoryRendaExtra),
		seedCategoryTotal(models.CategoryCustos),
		seedCategoryTotal(models.CategoryEstudos),
	)
}

func seedCategoryTotal(category models.Category) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range recurringSeed[category] {
		total = total.Add(decimal.RequireFromString(entry.value))
	}
	return total
}

// defaultPlanItems builds the full seeded item set for the given years.
// Output is fully deterministic for a fixed year list: categories iterate
// in canonical report order, months ascending, day always 1.
func defaultPlanItems(years []int) []models.PlanItem {
	profitLoss := seedProfitLoss()

	var items []models.PlanItem
	for _, year := range years {
		for month := time.January; month <= time.December; month++ {
			date := models.NewDate(year, month, 1)
			for _, category := range models.ReportCategoryOrder {
				for _, entry := range recurringSeed[category] {
					items = append(items, models.PlanItem{
						Category: category,
						Name:     entry.name,
						Value:    decimal.RequireFromString(entry.value),
						Meta:     decimal.RequireFromString(entry.meta),
						Date:     date,
					})
				}
				for _, milestone := range milestoneSeed[category] {
					if milestone.month != month {
						continue
					}
					items = append(items, models.PlanItem{
						Category: category,
						Name:     milestone.name,
						Value:    decimal.RequireFromString(milestone.value),
						Meta:     decimal.RequireFromString(milestone.meta),
						Date:     date,
					})
				}
			}
			items = append(items, models.PlanItem{
				Category: models.CategoryLucroPrejuizo,
				Name:     models.CategoryLucroPrejuizo.Label(),
				Value:    profitLoss,
				Meta:     decimal.Zero,
				Date:     date,
			})
		}
	}
	return items
}
