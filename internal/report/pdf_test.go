package report

import (
	"bytes"
	"testing"
	"time"

	"planvida/internal/models"
)

func renderSample(t *testing.T, theme Theme) []byte {
	t.Helper()

	items := []models.PlanItem{
		item(models.CategoryReceitas, "Salário", "3500.00", jan(1)),
		item(models.CategoryReceitas, "Salário", "3500.00", feb(1)),
		item(models.CategoryCustos, "Aluguel", "1200.00", jan(1)),
		item(models.CategoryCustos, "Alimentação", "800.00", feb(1)),
		item(models.CategoryRealizacoes, "Carro Novo", "0.00", feb(1)),
	}

	data, err := RenderPDF(BuildTable("Meu Plano", items), theme)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	return data
}

func TestRenderPDF_LightTheme(t *testing.T) {
	data := renderSample(t, LightTheme)
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
	if len(data) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(data))
	}
}

func TestRenderPDF_DarkTheme(t *testing.T) {
	data := renderSample(t, DarkTheme)
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestRenderPDF_EmptyPlan(t *testing.T) {
	data, err := RenderPDF(BuildTable("vazio", nil), LightTheme)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestRenderPDF_ManyPeriodsPaginate(t *testing.T) {
	// Three years of monthly rows across several categories forces page
	// breaks; rendering must still succeed.
	var items []models.PlanItem
	for year := 2024; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			d := models.NewDate(year, time.Month(month), 1)
			items = append(items,
				item(models.CategoryReceitas, "Salário", "3500.00", d),
				item(models.CategoryCustos, "Aluguel", "1200.00", d),
				item(models.CategoryCustos, "Alimentação", "800.00", d),
				item(models.CategoryEstudos, "Cursos", "200.00", d),
				item(models.CategoryInvestimentos, "Poupança", "150.00", d),
				item(models.CategoryPessoais, "Academia", "90.00", d),
			)
		}
	}

	data, err := RenderPDF(BuildTable("Plano Longo", items), DarkTheme)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestThemeFor(t *testing.T) {
	if ThemeFor(true) != DarkTheme {
		t.Error("expected dark theme")
	}
	if ThemeFor(false) != LightTheme {
		t.Error("expected light theme")
	}
}
