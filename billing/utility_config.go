package billing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"rentbill.app/billing/model"
)

type GetUtilityConfigParams struct {
	PropertyID string `query:"property_id"`
}

type UtilityConfigResponse struct {
	Config model.UtilityPriceConfig `json:"config"`
}

// GetActiveUtilityConfig returns the active price config of a contract,
// falling back to the one of its property.
//
//encore:api public path=/billing/utility-config/contract/:contractID method=GET
func (s *Service) GetActiveUtilityConfig(ctx context.Context, contractID string, params *GetUtilityConfigParams) (*UtilityConfigResponse, error) {
	propertyID := ""
	if params != nil {
		propertyID = strings.TrimSpace(params.PropertyID)
	}

	result, err := s.configs.GetActiveConfig(ctx, contractID, propertyID)
	if err != nil {
		if errs.Code(err) != errs.NotFound {
			rlog.Error("failed to get utility config", "error", err, "contract_id", contractID)
		}
		return nil, err
	}

	return &UtilityConfigResponse{
		Config: *result,
	}, nil
}

type SaveUtilityConfigRequest struct {
	PropertyID string  `json:"property_id" validate:"required,max=64"`
	ContractID *string `json:"contract_id,omitempty" validate:"omitempty,min=1,max=64"`

	ElectricityUnitPrice decimal.Decimal `json:"electricity_unit_price"`
	WaterUnitPrice       decimal.Decimal `json:"water_unit_price"`
	InternetPrice        decimal.Decimal `json:"internet_price"`
	ParkingPrice         decimal.Decimal `json:"parking_price"`
	CleaningPrice        decimal.Decimal `json:"cleaning_price"`
	MaintenancePrice     decimal.Decimal `json:"maintenance_price"`
}

// SaveUtilityConfig makes the given prices the active config of their scope.
//
//encore:api public path=/billing/utility-config method=POST
func (s *Service) SaveUtilityConfig(ctx context.Context, req *SaveUtilityConfigRequest) (*UtilityConfigResponse, error) {
	result, err := s.configs.SaveConfig(ctx, &model.UtilityPriceConfig{
		PropertyID:           req.PropertyID,
		ContractID:           req.ContractID,
		ElectricityUnitPrice: req.ElectricityUnitPrice,
		WaterUnitPrice:       req.WaterUnitPrice,
		InternetPrice:        req.InternetPrice,
		ParkingPrice:         req.ParkingPrice,
		CleaningPrice:        req.CleaningPrice,
		MaintenancePrice:     req.MaintenancePrice,
	})
	if err != nil {
		rlog.Error("failed to save utility config", "error", err, "property_id", req.PropertyID)
		return nil, err
	}

	return &UtilityConfigResponse{
		Config: *result,
	}, nil
}

func (r *SaveUtilityConfigRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	for _, p := range []struct {
		field string
		value decimal.Decimal
	}{
		{"electricity_unit_price", r.ElectricityUnitPrice},
		{"water_unit_price", r.WaterUnitPrice},
		{"internet_price", r.InternetPrice},
		{"parking_price", r.ParkingPrice},
		{"cleaning_price", r.CleaningPrice},
		{"maintenance_price", r.MaintenancePrice},
	} {
		if p.value.IsNegative() {
			return &errs.Error{Code: errs.InvalidArgument, Message: "prices must not be negative"}
		}
		if err := checkStorable(p.field, p.value); err != nil {
			return err
		}
	}
	return nil
}
