package billform

import (
	"github.com/shopspring/decimal"
)

// Patch is the set of draft values inherited for a newly selected contract.
// Nil fields leave the draft unchanged.
type Patch struct {
	ContractID   string
	PropertyID   string
	PriorBillID  int32
	BillingMonth string

	ElectricityOld decimal.Decimal
	WaterOld       decimal.Decimal

	MonthlyRent   *decimal.Decimal
	RentalDeposit *decimal.Decimal

	ElectricityUnitPrice *decimal.Decimal
	WaterUnitPrice       *decimal.Decimal
	InternetPrice        *decimal.Decimal
	ParkingPrice         *decimal.Decimal
	CleaningPrice        *decimal.Decimal
	MaintenancePrice     *decimal.Decimal
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
