package model

import (
	"github.com/shopspring/decimal"
)

// BillDraft holds the editable fields of a bill before it is persisted.
// Meter readings are absolute counter values; consumption is new - old.
type BillDraft struct {
	ContractID   string `json:"contract_id"`
	BillingMonth string `json:"billing_month"`

	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	RentalDeposit decimal.Decimal `json:"rental_deposit"`

	ElectricityOld       decimal.Decimal `json:"electricity_old"`
	ElectricityNew       decimal.Decimal `json:"electricity_new"`
	ElectricityUnitPrice decimal.Decimal `json:"electricity_unit_price"`

	WaterOld       decimal.Decimal `json:"water_old"`
	WaterNew       decimal.Decimal `json:"water_new"`
	WaterUnitPrice decimal.Decimal `json:"water_unit_price"`

	InternetPrice    decimal.Decimal `json:"internet_price"`
	ParkingPrice     decimal.Decimal `json:"parking_price"`
	CleaningPrice    decimal.Decimal `json:"cleaning_price"`
	MaintenancePrice decimal.Decimal `json:"maintenance_price"`

	OtherDescription string          `json:"other_description"`
	OtherPrice       decimal.Decimal `json:"other_price"`
	Notes            string          `json:"notes"`
}

// Charges is the derived money breakdown of a draft.
type Charges struct {
	ElectricityAmount decimal.Decimal `json:"electricity_amount"`
	WaterAmount       decimal.Decimal `json:"water_amount"`
	Total             decimal.Decimal `json:"total"`
}

// ComputeCharges applies the bill total formula. Negative meter deltas are
// kept as-is and lower the total.
func ComputeCharges(d BillDraft) Charges {
	electricity := d.ElectricityNew.Sub(d.ElectricityOld).Mul(d.ElectricityUnitPrice)
	water := d.WaterNew.Sub(d.WaterOld).Mul(d.WaterUnitPrice)

	total := decimal.Sum(
		d.MonthlyRent,
		d.RentalDeposit,
		electricity,
		water,
		d.InternetPrice,
		d.ParkingPrice,
		d.CleaningPrice,
		d.MaintenancePrice,
		d.OtherPrice,
	)

	return Charges{
		ElectricityAmount: electricity,
		WaterAmount:       water,
		Total:             total,
	}
}

// NegativeDeltas lists the meters whose new reading is below the old one.
func (d BillDraft) NegativeDeltas() []string {
	var meters []string
	if d.ElectricityNew.LessThan(d.ElectricityOld) {
		meters = append(meters, "electricity")
	}
	if d.WaterNew.LessThan(d.WaterOld) {
		meters = append(meters, "water")
	}
	return meters
}
