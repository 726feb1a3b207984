package bill

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"rentbill.app/billing/repository/bills"
	"rentbill.app/billing/repository/pgconv"
)

func num(v string) pgtype.Numeric {
	return pgconv.Numeric(decimal.RequireFromString(v))
}

func dbBill(id int32, status string) bills.Bill {
	return bills.Bill{
		ID:                   id,
		ContractID:           "contract-1",
		PropertyID:           "property-1",
		BillingMonth:         "2024-06",
		MonthlyRent:          num("5000000"),
		ElectricityOld:       num("50"),
		ElectricityNew:       num("100"),
		ElectricityUnitPrice: num("3500"),
		ElectricityAmount:    num("175000"),
		WaterAmount:          num("0"),
		TotalAmount:          num("5175000"),
		Status:               status,
		IdempotencyKey:       "key-1",
	}
}
