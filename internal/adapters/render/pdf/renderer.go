// Package pdf renders resident cash statements as PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/adapters/render"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
	"github.com/go-pdf/fpdf"
)

const (
	contentType = "application/pdf"
	lineHeight  = 6.0
)

// column widths in mm; they add up to the A4 printable width with 15mm margins.
var columns = []struct {
	title string
	width float64
	align string
}{
	{"Date", 34, "L"},
	{"Reason", 80, "L"},
	{"Entered by", 36, "L"},
	{"Amount", 30, "R"},
}

// Renderer writes statements with the fpdf core fonts.
type Renderer struct {
	location *time.Location
}

func NewRenderer(loc *time.Location) *Renderer {
	return &Renderer{location: loc}
}

var _ portssvc.StatementRenderer = (*Renderer)(nil)

func (r *Renderer) ContentType() string { return contentType }

func (r *Renderer) Extension() string { return "pdf" }

func (r *Renderer) Render(ctx context.Context, summary domain.FinanceSummary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := render.NewStatement(summary, r.location)

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.SetTitle(st.Title, true)
	doc.SetCreator("grouphome-ledger", true)
	doc.SetCreationDate(time.Date(summary.Period.Year, summary.Period.Month, 1, 0, 0, 0, 0, time.UTC))
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, tr(st.Title), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	for _, kv := range [][2]string{
		{"Resident", st.ResidentName},
		{"Period", st.PeriodLabel},
		{"Running balance", st.Balance},
		{"Open allowance", st.OpenAllowance},
		{"Latest cash count", st.LatestCount},
	} {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(40, lineHeight, tr(kv[0]), "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, lineHeight, tr(kv[1]), "", "L", false)
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for _, col := range columns {
		doc.CellFormat(col.width, lineHeight+1, col.title, "1", 0, col.align, true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	if len(st.Rows) == 0 {
		doc.CellFormat(0, lineHeight, "No transactions in this period.", "1", 1, "L", false, 0, "")
	}
	for _, row := range st.Rows {
		cells := []string{row.Date, row.Reason, row.EnteredBy, row.Amount}
		for i, col := range columns {
			doc.CellFormat(col.width, lineHeight, fitCell(doc, tr(cells[i]), col.width), "1", 0, col.align, false, 0, "")
		}
		doc.Ln(-1)
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(150, lineHeight, "Net for period", "1", 0, "R", false, 0, "")
	doc.CellFormat(30, lineHeight, st.PeriodNet, "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// fitCell shortens translated text with an ellipsis until it fits a cell of width mm.
// Translated text is single-byte, so it is cut bytewise.
func fitCell(doc *fpdf.Fpdf, s string, width float64) string {
	const padding = 2
	if doc.GetStringWidth(s) <= width-padding {
		return s
	}
	for len(s) > 0 && doc.GetStringWidth(s+"...") > width-padding {
		s = s[:len(s)-1]
	}
	return s + "..."
}
