package validate_test

import (
	"errors"
	"testing"

	"github.com/salesledger/api/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spID = "4f3c2b1a-0000-4000-8000-000000000001"

func newValidator() *validate.Validator {
	return validate.New([]string{"cash", "phonepe"})
}

func validEntry() validate.SalesEntryInput {
	return validate.SalesEntryInput{
		Date:             "2024-03-01",
		SalespersonID:    spID,
		CashCollected:    "1200.50",
		PhonepeCollected: "300",
		Expenses:         "75.25",
		Notes:            "  evening shift  ",
	}
}

// fields returns the offending field names of a validation error.
func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *validate.Error
	require.True(t, errors.As(err, &verr), "expected *validate.Error, got %v", err)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestSalespersonRequiresName(t *testing.T) {
	v := newValidator()

	_, err := v.Salesperson(validate.SalespersonInput{Name: "   "})
	got := fields(t, err)
	assert.Contains(t, got, "name")

	sp, err := v.Salesperson(validate.SalespersonInput{Name: " Alice ", Email: "not-an-email"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", sp.Name)
	assert.Equal(t, "not-an-email", sp.Email, "email is opaque text")
}

func TestSalesEntryAcceptsZeroAmounts(t *testing.T) {
	in := validEntry()
	in.CashCollected = "0"
	in.PhonepeCollected = "0.00"
	in.Expenses = "0"

	e, err := newValidator().SalesEntry(in)
	require.NoError(t, err)
	assert.True(t, e.CashCollected.IsZero())
	assert.Equal(t, "evening shift", e.Notes)
	assert.Equal(t, "2024-03-01", e.Date.Format(validate.DateLayout))
}

func TestSalesEntryRejectsNegativeCash(t *testing.T) {
	in := validEntry()
	in.CashCollected = "-1"

	_, err := newValidator().SalesEntry(in)
	got := fields(t, err)
	assert.Equal(t, "must be a non-negative amount with at most 2 decimal places", got["cash_collected"])
}

func TestSalesEntryReportsEveryField(t *testing.T) {
	_, err := newValidator().SalesEntry(validate.SalesEntryInput{
		Date:             "01/03/2024",
		SalespersonID:    "abc",
		CashCollected:    "12.345",
		PhonepeCollected: "ten",
	})
	got := fields(t, err)
	assert.Equal(t, "must be a date in YYYY-MM-DD format", got["date"])
	assert.Equal(t, "must be a valid UUID", got["salesperson_id"])
	assert.Contains(t, got, "cash_collected")
	assert.Contains(t, got, "phonepe_collected")
	assert.Equal(t, "is required", got["expenses"])
}

func TestSalesEntryRejectsOversizedAmount(t *testing.T) {
	in := validEntry()
	in.Expenses = "10000000000"

	_, err := newValidator().SalesEntry(in)
	assert.Contains(t, fields(t, err), "expenses")
}

func TestSalesEntryNestedSalesArePathNamed(t *testing.T) {
	in := validEntry()
	in.IndividualSales = []validate.IndividualSaleInput{
		{CustomerName: "Ravi", Amount: "100", PaymentMethod: "cash"},
		{CustomerName: "", Amount: "0", PaymentMethod: "cheque"},
	}

	_, err := newValidator().SalesEntry(in)
	got := fields(t, err)
	assert.Contains(t, got, "individual_sales[1].customer_name")
	assert.Contains(t, got, "individual_sales[1].amount")
	assert.Equal(t, "must be one of: cash, phonepe", got["individual_sales[1].payment_method"])
	assert.NotContains(t, got, "individual_sales[0].amount")
}

func TestIndividualSaleRequiresStrictlyPositiveAmount(t *testing.T) {
	v := newValidator()

	_, err := v.IndividualSale(validate.IndividualSaleInput{CustomerName: "Ravi", Amount: "0", PaymentMethod: "cash"})
	assert.Contains(t, fields(t, err), "amount")

	sale, err := v.IndividualSale(validate.IndividualSaleInput{CustomerName: "Ravi", Amount: "0.01", PaymentMethod: "phonepe"})
	require.NoError(t, err)
	assert.Equal(t, "0.01", sale.Amount.StringFixed(2))
}

func TestPaymentMethodsAreConfigurable(t *testing.T) {
	v := validate.New([]string{"cash", "upi", "card"})

	_, err := v.IndividualSale(validate.IndividualSaleInput{CustomerName: "Ravi", Amount: "10", PaymentMethod: "upi"})
	require.NoError(t, err)

	_, err = v.IndividualSale(validate.IndividualSaleInput{CustomerName: "Ravi", Amount: "10", PaymentMethod: "phonepe"})
	assert.Contains(t, fields(t, err), "payment_method")
	assert.Equal(t, []string{"cash", "upi", "card"}, v.PaymentMethods())
}

func TestDailySummaryInputs(t *testing.T) {
	v := newValidator()

	ds, err := v.DailySummary(validate.DailySummaryInput{OpeningCash: "1000", TotalSales: "500", TotalCollection: "300"})
	require.NoError(t, err)
	assert.Equal(t, "1000.00", ds.OpeningCash.StringFixed(2))

	_, err = v.DailySummary(validate.DailySummaryInput{OpeningCash: "-5", TotalSales: "", TotalCollection: "1"})
	got := fields(t, err)
	assert.Contains(t, got, "opening_cash")
	assert.Equal(t, "is required", got["total_sales"])
}

func TestParseAmount(t *testing.T) {
	for _, ok := range []string{"0", "1", "1.5", "1.50", "1.500", "9999999999.99"} {
		_, err := validate.ParseAmount(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "abc", "1.234", "1e3", "10000000000"} {
		_, err := validate.ParseAmount(bad)
		assert.Error(t, err, bad)
	}
}
