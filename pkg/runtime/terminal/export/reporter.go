// Package export writes a filtered view to an xlsx workbook: one sheet with
// the raw rows and one with the summary numbers.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
	"github.com/fin-tools/report-atlas/pkg/services/money"
)

const (
	rowsSheet    = "Rows"
	summarySheet = "Summary"
)

type Reporter struct {
	path string
}

func NewReporter(path string) *Reporter {
	return &Reporter{path: path}
}

func (r *Reporter) Handle(view *domain.FilteredView) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(rowsSheet)
	if err != nil {
		return fmt.Errorf("failed to create rows sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := r.writeRows(f, view); err != nil {
		return err
	}
	if err := r.writeSummary(f, view); err != nil {
		return err
	}

	if err := f.SaveAs(r.path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", r.path, err)
	}

	return nil
}

func (r *Reporter) writeRows(f *excelize.File, view *domain.FilteredView) error {
	header := []interface{}{"IIN/BIN", "Bank code", "IIK", "KBK", "Amount"}
	if err := f.SetSheetRow(rowsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range view.Rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.TaxpayerID,
			row.BankCode,
			row.Account,
			row.KBK,
			money.Parse(row.Amount).InexactFloat64(),
		}
		if err := f.SetSheetRow(rowsSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return nil
}

func (r *Reporter) writeSummary(f *excelize.File, view *domain.FilteredView) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Region", view.Selection.Region},
		{"Period", view.Selection.Period},
		{"KBK", view.Selection.KBK},
		{"Total", view.Total.InexactFloat64()},
		{"Unique taxpayers", view.UniqueTaxpayers},
		{"Top 10 share, %", view.Top10Share},
		{},
		{"Top taxpayers"},
	}
	for _, t := range view.Top10 {
		rows = append(rows, []interface{}{t.TaxpayerID, t.Amount.InexactFloat64()})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Monthly breakdown"})
	for _, m := range view.Months {
		rows = append(rows, []interface{}{m.Label, m.Amount.InexactFloat64()})
	}

	for i, values := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	return nil
}
