package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"planvida/internal/models"
)

// Row is one line of a report section: a cell per period plus a row total.
// Cells hold raw decimals; formatting happens only in renderers.
type Row struct {
	Name  string
	Cells []decimal.Decimal
	Total decimal.Decimal
}

// Section is one category block of the report.
type Section struct {
	Category models.Category
	Label    string
	Rows     []Row
	Subtotal Row
}

// Table is the format-agnostic report model: a fixed leading name column,
// one column per period, and a trailing total column, repeated per section.
type Table struct {
	PlanName string
	Periods  []Period
	Sections []Section
}

// BuildTable pivots a plan's items into the sectioned period grid.
//
// Periods are the sorted distinct year-months across all items. Categories
// are emitted in models.ReportCategoryOrder; a category with no items is
// skipped except lucro_prejuizo, which is derived rather than stored and is
// always rendered. Items sharing a name within a category produce one row
// (first-seen name order); values landing in the same period cell are
// summed, so a section's cells always add up to its subtotal.
func BuildTable(planName string, items []models.PlanItem) *Table {
	t := &Table{PlanName: planName, Periods: collectPeriods(items)}

	index := make(map[models.Category]map[string]map[Period]decimal.Decimal)
	names := make(map[models.Category][]string)
	for _, item := range items {
		rows, ok := index[item.Category]
		if !ok {
			rows = make(map[string]map[Period]decimal.Decimal)
			index[item.Category] = rows
		}
		cells, ok := rows[item.Name]
		if !ok {
			cells = make(map[Period]decimal.Decimal)
			rows[item.Name] = cells
			names[item.Category] = append(names[item.Category], item.Name)
		}
		p := PeriodOf(item.Date)
		cells[p] = cells[p].Add(item.Value)
	}

	for _, category := range models.ReportCategoryOrder {
		if category == models.CategoryLucroPrejuizo {
			t.Sections = append(t.Sections, t.profitLossSection(items))
			continue
		}
		if len(index[category]) == 0 {
			continue
		}
		t.Sections = append(t.Sections, t.categorySection(category, names[category], index[category]))
	}
	return t
}

// collectPeriods returns the sorted distinct year-months across all items.
func collectPeriods(items []models.PlanItem) []Period {
	seen := make(map[Period]bool)
	var periods []Period
	for _, item := range items {
		p := PeriodOf(item.Date)
		if !seen[p] {
			seen[p] = true
			periods = append(periods, p)
		}
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })
	return periods
}

func (t *Table) categorySection(category models.Category, names []string, rows map[string]map[Period]decimal.Decimal) Section {
	section := Section{Category: category, Label: category.Label()}

	subtotal := Row{Name: "Subtotal", Cells: make([]decimal.Decimal, len(t.Periods))}
	for _, name := range names {
		row := Row{Name: name, Cells: make([]decimal.Decimal, len(t.Periods))}
		for i, p := range t.Periods {
			v := rows[name][p]
			row.Cells[i] = v
			row.Total = row.Total.Add(v)
			subtotal.Cells[i] = subtotal.Cells[i].Add(v)
		}
		subtotal.Total = subtotal.Total.Add(row.Total)
		section.Rows = append(section.Rows, row)
	}
	section.Subtotal = subtotal
	return section
}

// profitLossSection builds the single synthetic row for the derived
// profit/loss category. Its subtotal equals the row.
func (t *Table) profitLossSection(items []models.PlanItem) Section {
	section := Section{
		Category: models.CategoryLucroPrejuizo,
		Label:    models.CategoryLucroPrejuizo.Label(),
	}

	type ledger struct{ receitas, rendaExtra, custos, estudos decimal.Decimal }
	byPeriod := make(map[Period]ledger)
	for _, item := range items {
		p := PeriodOf(item.Date)
		l := byPeriod[p]
		switch item.Category {
		case models.CategoryReceitas:
			l.receitas = l.receitas.Add(item.Value)
		case models.CategoryRendaExtra:
			l.rendaExtra = l.rendaExtra.Add(item.Value)
		case models.CategoryCustos:
			l.custos = l.custos.Add(item.Value)
		case models.CategoryEstudos:
			l.estudos = l.estudos.Add(item.Value)
		default:
			continue
		}
		byPeriod[p] = l
	}

	if len(t.Periods) == 0 {
		section.Subtotal = Row{Name: "Subtotal"}
		return section
	}

	row := Row{Name: section.Label, Cells: make([]decimal.Decimal, len(t.Periods))}
	for i, p := range t.Periods {
		l := byPeriod[p]
		v := ProfitLoss(l.receitas, l.rendaExtra, l.custos, l.estudos)
		row.Cells[i] = v
		row.Total = row.Total.Add(v)
	}
	section.Rows = []Row{row}

	subtotal := Row{Name: "Subtotal", Cells: make([]decimal.Decimal, len(row.Cells)), Total: row.Total}
	copy(subtotal.Cells, row.Cells)
	section.Subtotal = subtotal
	return section
}
