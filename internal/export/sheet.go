// Package export renders ledger reports as downloadable files.
package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/salesledger/api/internal/enum"
	"github.com/salesledger/api/internal/money"
	"github.com/salesledger/api/internal/service"
	"github.com/shopspring/decimal"
)

var ErrUnknownFormat = errors.New("unknown export format")

const (
	displayDate      = "Jan 2, 2006"
	displayDateLong  = "January 2, 2006"
	displayTimestamp = "2006-01-02 15:04:05"
)

// Sheet is a titled table with a block of summary lines above it.
type Sheet struct {
	Title       string
	GeneratedAt time.Time
	Info        []string
	Headers     []string
	Rows        [][]string
}

// Formats lists the accepted format identifiers.
var Formats = []string{enum.ExportFormatCSV, enum.ExportFormatTSV, enum.ExportFormatXLSX, enum.ExportFormatPDF}

// ContentType returns the MIME type for format.
func ContentType(format string) string {
	switch format {
	case enum.ExportFormatCSV:
		return "text/csv; charset=utf-8"
	case enum.ExportFormatTSV:
		return "text/tab-separated-values; charset=utf-8"
	case enum.ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case enum.ExportFormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Write renders s to w in the given format.
func Write(w io.Writer, s Sheet, format string) error {
	switch format {
	case enum.ExportFormatCSV:
		return WriteCSV(w, s)
	case enum.ExportFormatTSV:
		return WriteTSV(w, s)
	case enum.ExportFormatXLSX:
		return WriteXLSX(w, s)
	case enum.ExportFormatPDF:
		return WritePDF(w, s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func amount(currency string, d decimal.Decimal) string {
	return currency + money.Format(d)
}

// SalesRecords builds the "Sales Records Export" sheet for a range report.
// salespersonName is empty when the report covers all salespersons.
func SalesRecords(report *service.RangeReport, salespersonName, currency string, generatedAt time.Time) Sheet {
	scope := "All Salespersons"
	if salespersonName != "" {
		scope = "Salesperson: " + salespersonName
	}
	t := report.Totals
	info := []string{
		fmt.Sprintf("Period: %s to %s", report.Filter.From.Format(displayDate), report.Filter.To.Format(displayDate)),
		scope,
		fmt.Sprintf("Total Records: %d", len(report.Entries)),
		"",
		"PERIOD SUMMARY",
		"Total Cash: " + amount(currency, t.Cash),
		"Total PhonePe: " + amount(currency, t.Phonepe),
		"Total Expenses: " + amount(currency, t.Expenses),
		"Net Total: " + amount(currency, t.Net),
		"",
		"DETAILED RECORDS",
	}

	rows := make([][]string, len(report.Entries))
	for i, e := range report.Entries {
		cash := money.FromNumeric(e.Entry.CashCollected)
		phonepe := money.FromNumeric(e.Entry.PhonepeCollected)
		expenses := money.FromNumeric(e.Entry.Expenses)
		notes := "No notes"
		if e.Entry.Notes.Valid && e.Entry.Notes.String != "" {
			notes = e.Entry.Notes.String
		}
		rows[i] = []string{
			e.Entry.EntryDate.Time.Format(displayDate),
			e.SalespersonName,
			amount(currency, cash),
			amount(currency, phonepe),
			amount(currency, expenses),
			amount(currency, money.Net(cash, phonepe, expenses)),
			notes,
			e.Entry.CreatedAt.In(generatedAt.Location()).Format(displayTimestamp),
		}
	}

	return Sheet{
		Title:       "Sales Records Export",
		GeneratedAt: generatedAt,
		Info:        info,
		Headers:     []string{"Date", "Salesperson", "Cash Collected", "PhonePe Collected", "Expenses", "Net Amount", "Notes", "Entry Time"},
		Rows:        rows,
	}
}

// DailyReport builds the "Daily Sales Report" sheet: date totals then one row per salesperson.
func DailyReport(report *service.DailyReport, currency string, generatedAt time.Time) Sheet {
	t := report.Totals
	info := []string{
		"Date: " + report.Date.Format(displayDateLong),
		"Total Cash: " + amount(currency, t.Cash),
		"Total PhonePe: " + amount(currency, t.Phonepe),
		"Total Expenses: " + amount(currency, t.Expenses),
		"Net Total: " + amount(currency, t.Net),
	}
	if s := report.Summary; s != nil {
		info = append(info,
			"",
			"RECONCILIATION",
			"Opening Cash: "+amount(currency, money.FromNumeric(s.OpeningCash)),
			"Total Sales: "+amount(currency, money.FromNumeric(s.TotalSales)),
			"Total Collection: "+amount(currency, money.FromNumeric(s.TotalCollection)),
			"Closing Balance: "+amount(currency, money.FromNumeric(s.ClosingBalance)),
		)
	}

	rows := make([][]string, len(report.Salespersons))
	for i, sp := range report.Salespersons {
		rows[i] = []string{
			sp.SalespersonName,
			amount(currency, sp.Cash),
			amount(currency, sp.Phonepe),
			amount(currency, sp.Expenses),
			amount(currency, sp.Net),
		}
	}

	return Sheet{
		Title:       "Daily Sales Report",
		GeneratedAt: generatedAt,
		Info:        info,
		Headers:     []string{"Salesperson", "Cash Collected", "PhonePe Collected", "Expenses", "Net Total"},
		Rows:        rows,
	}
}

func (s Sheet) generatedLine() string {
	return "Generated on: " + s.GeneratedAt.Format(displayTimestamp)
}
