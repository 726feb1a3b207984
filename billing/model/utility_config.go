package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UtilityPriceConfig carries the unit prices and fixed fees that seed new
// bills. A config is scoped to a contract when ContractID is set, otherwise
// it applies to every contract of the property.
type UtilityPriceConfig struct {
	ID         int32   `json:"id"`
	ContractID *string `json:"contract_id,omitempty"`
	PropertyID string  `json:"property_id"`

	ElectricityUnitPrice decimal.Decimal `json:"electricity_unit_price"`
	WaterUnitPrice       decimal.Decimal `json:"water_unit_price"`
	InternetPrice        decimal.Decimal `json:"internet_price"`
	ParkingPrice         decimal.Decimal `json:"parking_price"`
	CleaningPrice        decimal.Decimal `json:"cleaning_price"`
	MaintenancePrice     decimal.Decimal `json:"maintenance_price"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contract is the subset of a lease contract that billing needs.
type Contract struct {
	ID            string          `json:"id"`
	PropertyID    string          `json:"property_id"`
	TenantName    string          `json:"tenant_name,omitempty"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	RentalDeposit decimal.Decimal `json:"rental_deposit"`
}
