package models

// Category tags a plan item's financial role. The set is closed: adding a
// category means extending the constants below and the switch statements
// that consume them.
type Category string

const (
	CategoryReceitas      Category = "receitas"
	CategoryRendaExtra    Category = "renda_extra"
	CategoryEstudos       Category = "estudos"
	CategoryCustos        Category = "custos"
	CategoryLucroPrejuizo Category = "lucro_prejuizo"
	CategoryInvestimentos Category = "investimentos"
	CategoryRealizacoes   Category = "realizacoes"
	CategoryIntercambio   Category = "intercambio"
	CategoryEmpresas      Category = "empresas"
	CategoryPessoais      Category = "pessoais"
)

// ReportCategoryOrder is the fixed display order of category sections in
// exported reports.
var ReportCategoryOrder = []Category{
	CategoryReceitas,
	CategoryRendaExtra,
	CategoryEstudos,
	CategoryCustos,
	CategoryLucroPrejuizo,
	CategoryInvestimentos,
	CategoryRealizacoes,
	CategoryIntercambio,
	CategoryEmpresas,
	CategoryPessoais,
}

// ParseCategory validates a raw category string. The camel-case spelling
// "lucroPrejuizo" used by older API clients is accepted as an alias for the
// stored literal.
func ParseCategory(s string) (Category, bool) {
	if s == "lucroPrejuizo" {
		return CategoryLucroPrejuizo, true
	}
	c := Category(s)
	if c.Valid() {
		return c, true
	}
	return "", false
}

// Valid reports whether c is one of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryReceitas, CategoryRendaExtra, CategoryEstudos, CategoryCustos,
		CategoryLucroPrejuizo, CategoryInvestimentos, CategoryRealizacoes,
		CategoryIntercambio, CategoryEmpresas, CategoryPessoais:
		return true
	}
	return false
}

// IsCredit reports whether the category counts toward profit.
func (c Category) IsCredit() bool {
	return c == CategoryReceitas || c == CategoryRendaExtra
}

// IsDebit reports whether the category counts against profit. Education
// spend is treated as a cost.
func (c Category) IsDebit() bool {
	return c == CategoryCustos || c == CategoryEstudos
}

// Label returns the human-readable Portuguese display label used in reports.
func (c Category) Label() string {
	switch c {
	case CategoryReceitas:
		return "Receitas"
	case CategoryRendaExtra:
		return "Renda Extra"
	case CategoryEstudos:
		return "Estudos"
	case CategoryCustos:
		return "Custos"
	case CategoryLucroPrejuizo:
		return "Lucro/Prejuízo"
	case CategoryInvestimentos:
		return "Investimentos"
	case CategoryRealizacoes:
		return "Realizações"
	case CategoryIntercambio:
		return "Intercâmbio"
	case CategoryEmpresas:
		return "Empresas"
	case CategoryPessoais:
		return "Pessoais"
	}
	return string(c)
}
