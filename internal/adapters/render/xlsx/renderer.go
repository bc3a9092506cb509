// Package xlsx renders resident cash statements as spreadsheets.
package xlsx

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/adapters/render"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

const (
	contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName   = "Statement"
	// tableStartRow is the header row of the transaction table.
	tableStartRow = 8
)

// Renderer writes statements as a single-sheet workbook.
type Renderer struct {
	location *time.Location
}

func NewRenderer(loc *time.Location) *Renderer {
	return &Renderer{location: loc}
}

var _ portssvc.StatementRenderer = (*Renderer)(nil)

func (r *Renderer) ContentType() string { return contentType }

func (r *Renderer) Extension() string { return "xlsx" }

func (r *Renderer) Render(ctx context.Context, summary domain.FinanceSummary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := render.NewStatement(summary, r.location)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating style: %w", err)
	}

	header := [][]interface{}{
		{st.Title},
		{"Resident", st.ResidentName},
		{"Period", st.PeriodLabel},
		{"Running balance", st.Balance},
		{"Open allowance", st.OpenAllowance},
		{"Latest cash count", st.LatestCount},
	}
	for i, values := range header {
		if err := setRow(f, 1, i+1, values); err != nil {
			return nil, err
		}
	}

	table := []interface{}{"Date", "Reason", "Entered by", "Amount (cents)", "Amount"}
	if err := setRow(f, 1, tableStartRow, table); err != nil {
		return nil, err
	}
	for i, row := range st.Rows {
		values := []interface{}{row.Date, row.Reason, row.EnteredBy, row.AmountCents, row.Amount}
		if err := setRow(f, 1, tableStartRow+1+i, values); err != nil {
			return nil, err
		}
	}
	totalRow := tableStartRow + 1 + len(st.Rows)
	if err := setRow(f, 3, totalRow, []interface{}{"Net for period", summary.PeriodNetCents(), st.PeriodNet}); err != nil {
		return nil, err
	}

	for _, cells := range [][2]string{{"A1", "A6"}, {"A8", "E8"}} {
		if err := f.SetCellStyle(sheetName, cells[0], cells[1], bold); err != nil {
			return nil, fmt.Errorf("styling cells: %w", err)
		}
	}
	if err := f.SetColWidth(sheetName, "A", "A", 20); err != nil {
		return nil, fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 40); err != nil {
		return nil, fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(sheetName, "C", "E", 16); err != nil {
		return nil, fmt.Errorf("sizing columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, col, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}
