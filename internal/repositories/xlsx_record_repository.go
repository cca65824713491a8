package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
)

const sheetName = "Sheet1"

// Columns is the header row of the exported workbook, in order.
var Columns = []string{
	"Bank Name",
	"Card Name",
	"Min Income",
	"Cashback",
	"Cashback Category",
	"Cashback Rate",
	"Monthly Cap",
	"Spend",
	"Annual Fee",
	"Annual Fee Simple",
	"Card Link",
}

// ErrNoExport is returned by FindAll before anything has been saved.
var ErrNoExport = errors.New("no exported workbook")

// XLSXRecordRepository keeps the records of the latest run in a single
// spreadsheet file. Every Save replaces the whole file.
type XLSXRecordRepository struct {
	path string
}

func NewXLSXRecordRepository(path string) *XLSXRecordRepository {
	return &XLSXRecordRepository{path: path}
}

func (r *XLSXRecordRepository) Path() string {
	return r.path
}

func (r *XLSXRecordRepository) Save(ctx context.Context, records []domain.CardRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toRow(rec)); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(r.path)
}

// FindAll reads the last export back. A sheet cell cannot tell "absent"
// from "empty", so an empty optional column (bank, cashback line fields,
// summary fee) comes back as nil even if it was saved as a pointer to "".
func (r *XLSXRecordRepository) FindAll(ctx context.Context) ([]domain.CardRecord, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoExport
		}
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	records := []domain.CardRecord{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, fromRow(row))
	}
	return records, nil
}

func toRow(rec domain.CardRecord) []interface{} {
	return []interface{}{
		deref(rec.BankName),
		rec.CardName,
		rec.MinIncome,
		rec.HeadlineCashback,
		deref(rec.CashbackCategory),
		deref(rec.CashbackRate),
		deref(rec.MonthlyCap),
		deref(rec.Spend),
		rec.AnnualFee,
		deref(rec.AnnualFeeSimple),
		rec.CardLink,
	}
}

// fromRow maps a sheet row back to a record. GetRows drops trailing empty
// cells, so short rows are padded first.
func fromRow(row []string) domain.CardRecord {
	cells := make([]string, len(Columns))
	copy(cells, row)

	return domain.CardRecord{
		BankName:         optional(cells[0]),
		CardName:         cells[1],
		MinIncome:        cells[2],
		HeadlineCashback: cells[3],
		CashbackCategory: optional(cells[4]),
		CashbackRate:     optional(cells[5]),
		MonthlyCap:       optional(cells[6]),
		Spend:            optional(cells[7]),
		AnnualFee:        cells[8],
		AnnualFeeSimple:  optional(cells[9]),
		CardLink:         cells[10],
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
