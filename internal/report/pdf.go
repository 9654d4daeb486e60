package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Theme holds the RGB palette for the PDF renderer. Themes are cosmetic:
// they change colors only, never content or layout.
type Theme struct {
	PageFill     [3]int
	FillPage     bool
	Text         [3]int
	Muted        [3]int
	HeaderFill   [3]int
	HeaderText   [3]int
	ColumnFill   [3]int
	ColumnText   [3]int
	RowFillEven  [3]int
	RowFillOdd   [3]int
	SubtotalFill [3]int
}

// LightTheme is the default white-background palette.
var LightTheme = Theme{
	Text:         [3]int{50, 50, 50},
	Muted:        [3]int{120, 120, 120},
	HeaderFill:   [3]int{0, 51, 102},
	HeaderText:   [3]int{255, 255, 255},
	ColumnFill:   [3]int{70, 90, 110},
	ColumnText:   [3]int{255, 255, 255},
	RowFillEven:  [3]int{245, 247, 250},
	RowFillOdd:   [3]int{255, 255, 255},
	SubtotalFill: [3]int{230, 235, 240},
}

// DarkTheme is the dark_mode palette.
var DarkTheme = Theme{
	PageFill:     [3]int{33, 37, 41},
	FillPage:     true,
	Text:         [3]int{222, 226, 230},
	Muted:        [3]int{140, 146, 152},
	HeaderFill:   [3]int{13, 110, 253},
	HeaderText:   [3]int{255, 255, 255},
	ColumnFill:   [3]int{52, 58, 64},
	ColumnText:   [3]int{222, 226, 230},
	RowFillEven:  [3]int{44, 48, 52},
	RowFillOdd:   [3]int{38, 42, 46},
	SubtotalFill: [3]int{60, 66, 72},
}

// ThemeFor returns the palette for the dark_mode export option.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// Landscape A4.
const (
	pdfPageWidth    = 297.0
	pdfPageHeight   = 210.0
	pdfMargin       = 10.0
	pdfContentWidth = pdfPageWidth - 2*pdfMargin
	pdfBreakAt      = 192.0
	pdfNameColWidth = 52.0
	pdfSumColWidth  = 28.0
)

// RenderPDF draws the sectioned report table into a paginated PDF document
// and returns the encoded bytes.
func RenderPDF(t *Table, theme Theme) ([]byte, error) {
	r := &pdfRenderer{
		pdf:   fpdf.New("L", "mm", "A4", ""),
		theme: theme,
		table: t,
	}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	r.pdf.SetAutoPageBreak(false, pdfMargin)

	r.periodWidth = pdfContentWidth - pdfNameColWidth - pdfSumColWidth
	if n := len(t.Periods); n > 0 {
		r.periodWidth /= float64(n)
	}

	r.addPage()
	r.drawTitle()
	for i := range t.Sections {
		r.drawSection(&t.Sections[i])
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfRenderer struct {
	pdf         *fpdf.Fpdf
	tr          func(string) string
	theme       Theme
	table       *Table
	periodWidth float64
}

// addPage starts a new page and, for dark themes, paints the page
// background before any cell is drawn.
func (r *pdfRenderer) addPage() {
	r.pdf.AddPage()
	if r.theme.FillPage {
		r.setFill(r.theme.PageFill)
		r.pdf.Rect(0, 0, pdfPageWidth, pdfPageHeight, "F")
		r.pdf.SetY(pdfMargin)
	}
}

func (r *pdfRenderer) setFill(c [3]int) { r.pdf.SetFillColor(c[0], c[1], c[2]) }
func (r *pdfRenderer) setText(c [3]int) { r.pdf.SetTextColor(c[0], c[1], c[2]) }

func (r *pdfRenderer) drawTitle() {
	r.pdf.SetFont("Arial", "B", 16)
	r.setText(r.theme.Text)
	r.pdf.CellFormat(pdfContentWidth, 10, r.tr("Plano de Vida"), "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	r.setText(r.theme.Muted)
	subtitle := fmt.Sprintf("%s  |  gerado em %s", r.table.PlanName, time.Now().Format("02/01/2006"))
	r.pdf.CellFormat(pdfContentWidth, 6, r.tr(subtitle), "", 1, "L", false, 0, "")
	r.pdf.Ln(3)
}

// ensureSpace breaks to a new page when fewer than h millimeters remain.
func (r *pdfRenderer) ensureSpace(h float64) {
	if r.pdf.GetY()+h > pdfBreakAt {
		r.addPage()
	}
}

func (r *pdfRenderer) drawSection(s *Section) {
	// Header bar plus at least the column header and one row together.
	r.ensureSpace(7 + 5 + 5)

	r.pdf.SetFont("Arial", "B", 10)
	r.setFill(r.theme.HeaderFill)
	r.setText(r.theme.HeaderText)
	r.pdf.CellFormat(pdfContentWidth, 7, r.tr(s.Label), "", 1, "L", true, 0, "")

	r.drawColumnHeader()

	if len(s.Rows) == 0 {
		r.pdf.SetFont("Arial", "I", 8)
		r.setText(r.theme.Muted)
		r.setFill(r.theme.RowFillEven)
		r.pdf.CellFormat(pdfContentWidth, 5, r.tr("Sem dados"), "", 1, "C", true, 0, "")
		r.pdf.Ln(4)
		return
	}

	r.pdf.SetFont("Arial", "", 7)
	r.setText(r.theme.Text)
	for i := range s.Rows {
		if r.pdf.GetY()+5 > pdfBreakAt {
			r.addPage()
			r.drawColumnHeader()
			r.pdf.SetFont("Arial", "", 7)
			r.setText(r.theme.Text)
		}
		if i%2 == 0 {
			r.setFill(r.theme.RowFillEven)
		} else {
			r.setFill(r.theme.RowFillOdd)
		}
		r.drawRow(&s.Rows[i])
	}

	if r.pdf.GetY()+5 > pdfBreakAt {
		r.addPage()
		r.drawColumnHeader()
	}
	r.pdf.SetFont("Arial", "B", 7)
	r.setText(r.theme.Text)
	r.setFill(r.theme.SubtotalFill)
	r.drawRow(&s.Subtotal)

	r.pdf.Ln(4)
}

func (r *pdfRenderer) drawColumnHeader() {
	r.pdf.SetFont("Arial", "B", 7)
	r.setFill(r.theme.ColumnFill)
	r.setText(r.theme.ColumnText)
	r.pdf.CellFormat(pdfNameColWidth, 5, r.tr("Nome"), "", 0, "L", true, 0, "")
	for _, p := range r.table.Periods {
		r.pdf.CellFormat(r.periodWidth, 5, p.Label(), "", 0, "R", true, 0, "")
	}
	r.pdf.CellFormat(pdfSumColWidth, 5, "Total", "", 1, "R", true, 0, "")
}

func (r *pdfRenderer) drawRow(row *Row) {
	r.pdf.CellFormat(pdfNameColWidth, 5, r.tr(row.Name), "", 0, "L", true, 0, "")
	for _, cell := range row.Cells {
		r.pdf.CellFormat(r.periodWidth, 5, r.tr(FormatBRL(cell)), "", 0, "R", true, 0, "")
	}
	r.pdf.CellFormat(pdfSumColWidth, 5, r.tr(FormatBRL(row.Total)), "", 1, "R", true, 0, "")
}
