package billform

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rentbill.app/billing/model"
)

type fieldSetter func(d *model.BillDraft, value string)

func number(dst func(d *model.BillDraft) *decimal.Decimal) fieldSetter {
	return func(d *model.BillDraft, value string) {
		*dst(d) = parseNumber(value)
	}
}

// fields maps the wire names of editable draft fields to their setters.
var fields = map[string]fieldSetter{
	"billingMonth": func(d *model.BillDraft, v string) { d.BillingMonth = strings.TrimSpace(v) },

	"monthlyRent":   number(func(d *model.BillDraft) *decimal.Decimal { return &d.MonthlyRent }),
	"rentalDeposit": number(func(d *model.BillDraft) *decimal.Decimal { return &d.RentalDeposit }),

	"electricityOld":       number(func(d *model.BillDraft) *decimal.Decimal { return &d.ElectricityOld }),
	"electricityNew":       number(func(d *model.BillDraft) *decimal.Decimal { return &d.ElectricityNew }),
	"electricityUnitPrice": number(func(d *model.BillDraft) *decimal.Decimal { return &d.ElectricityUnitPrice }),

	"waterOld":       number(func(d *model.BillDraft) *decimal.Decimal { return &d.WaterOld }),
	"waterNew":       number(func(d *model.BillDraft) *decimal.Decimal { return &d.WaterNew }),
	"waterUnitPrice": number(func(d *model.BillDraft) *decimal.Decimal { return &d.WaterUnitPrice }),

	"internetPrice":    number(func(d *model.BillDraft) *decimal.Decimal { return &d.InternetPrice }),
	"parkingPrice":     number(func(d *model.BillDraft) *decimal.Decimal { return &d.ParkingPrice }),
	"cleaningPrice":    number(func(d *model.BillDraft) *decimal.Decimal { return &d.CleaningPrice }),
	"maintenancePrice": number(func(d *model.BillDraft) *decimal.Decimal { return &d.MaintenancePrice }),

	"otherDescription": func(d *model.BillDraft, v string) { d.OtherDescription = v },
	"otherPrice":       number(func(d *model.BillDraft) *decimal.Decimal { return &d.OtherPrice }),
	"notes":            func(d *model.BillDraft, v string) { d.Notes = v },
}

// FieldNames lists the names accepted by SetField.
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseNumber treats blank and unparsable input as zero.
func parseNumber(value string) decimal.Decimal {
	v := strings.TrimSpace(value)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}
