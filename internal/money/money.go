// Package money converts between database numerics, decimals and the
// fixed two-decimal strings used on the wire and in exports.
package money

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// FromNumeric converts a pgtype.Numeric to a decimal. NULL and NaN become zero.
func FromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func ToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}

// String renders a numeric with exactly two decimals, e.g. "1250.00".
func String(n pgtype.Numeric) string {
	return FromNumeric(n).StringFixed(2)
}

// Format renders d with Indian digit grouping, e.g. 1234567.5 -> "12,34,567.50".
func Format(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if d.IsNegative() {
		grouped = "-" + grouped
	}
	return grouped + "." + frac
}

// Net is cash + phonepe - expenses.
func Net(cash, phonepe, expenses decimal.Decimal) decimal.Decimal {
	return cash.Add(phonepe).Sub(expenses)
}
