package validate

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Raw inputs (as decoded from JSON) ---

type SalespersonInput struct {
	Name  string `json:"name" validate:"required,notblank,max=200"`
	Email string `json:"email"`
}

type SalesEntryInput struct {
	Date             string                `json:"date" validate:"required,isodate"`
	SalespersonID    string                `json:"salesperson_id" validate:"required,uuid"`
	CashCollected    string                `json:"cash_collected" validate:"required,money_nonneg"`
	PhonepeCollected string                `json:"phonepe_collected" validate:"required,money_nonneg"`
	Expenses         string                `json:"expenses" validate:"required,money_nonneg"`
	Notes            string                `json:"notes" validate:"max=1000"`
	IndividualSales  []IndividualSaleInput `json:"individual_sales" validate:"omitempty,dive"`
}

type IndividualSaleInput struct {
	CustomerName  string `json:"customer_name" validate:"required,notblank,max=200"`
	Amount        string `json:"amount" validate:"required,money_pos"`
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
}

type DailySummaryInput struct {
	OpeningCash     string `json:"opening_cash" validate:"required,money_nonneg"`
	TotalSales      string `json:"total_sales" validate:"required,money_nonneg"`
	TotalCollection string `json:"total_collection" validate:"required,money_nonneg"`
}

// --- Normalized records ---

type Salesperson struct {
	Name  string
	Email string // empty when not supplied
}

type SalesEntry struct {
	Date             time.Time
	SalespersonID    uuid.UUID
	CashCollected    decimal.Decimal
	PhonepeCollected decimal.Decimal
	Expenses         decimal.Decimal
	Notes            string
	IndividualSales  []IndividualSale
}

type IndividualSale struct {
	CustomerName  string
	Amount        decimal.Decimal
	PaymentMethod string
}

type DailySummary struct {
	OpeningCash     decimal.Decimal
	TotalSales      decimal.Decimal
	TotalCollection decimal.Decimal
}

// --- Validators ---

func (val *Validator) Salesperson(in SalespersonInput) (Salesperson, error) {
	if err := val.check(in); err != nil {
		return Salesperson{}, err
	}
	return Salesperson{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
	}, nil
}

// SalesEntry validates an entry and any individual sales submitted with it.
func (val *Validator) SalesEntry(in SalesEntryInput) (SalesEntry, error) {
	if err := val.check(in); err != nil {
		return SalesEntry{}, err
	}
	date, _ := ParseDate(in.Date)
	cash, _ := ParseAmount(in.CashCollected)
	phonepe, _ := ParseAmount(in.PhonepeCollected)
	expenses, _ := ParseAmount(in.Expenses)

	out := SalesEntry{
		Date:             date,
		SalespersonID:    uuid.MustParse(in.SalespersonID),
		CashCollected:    cash,
		PhonepeCollected: phonepe,
		Expenses:         expenses,
		Notes:            strings.TrimSpace(in.Notes),
	}
	for _, s := range in.IndividualSales {
		out.IndividualSales = append(out.IndividualSales, normalizeSale(s))
	}
	return out, nil
}

func (val *Validator) IndividualSale(in IndividualSaleInput) (IndividualSale, error) {
	if err := val.check(in); err != nil {
		return IndividualSale{}, err
	}
	return normalizeSale(in), nil
}

func (val *Validator) DailySummary(in DailySummaryInput) (DailySummary, error) {
	if err := val.check(in); err != nil {
		return DailySummary{}, err
	}
	opening, _ := ParseAmount(in.OpeningCash)
	sales, _ := ParseAmount(in.TotalSales)
	collection, _ := ParseAmount(in.TotalCollection)
	return DailySummary{
		OpeningCash:     opening,
		TotalSales:      sales,
		TotalCollection: collection,
	}, nil
}

func normalizeSale(in IndividualSaleInput) IndividualSale {
	amount, _ := ParseAmount(in.Amount)
	return IndividualSale{
		CustomerName:  strings.TrimSpace(in.CustomerName),
		Amount:        amount,
		PaymentMethod: in.PaymentMethod,
	}
}
