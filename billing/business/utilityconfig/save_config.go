package utilityconfig

import (
	"context"

	"encore.dev/beta/errs"

	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/pgconv"
	"rentbill.app/billing/repository/utilityconfigs"
)

// SaveConfig stores cfg as the active config of its scope, retiring the
// previously active one.
func (b *business) SaveConfig(ctx context.Context, cfg *model.UtilityPriceConfig) (*model.UtilityPriceConfig, error) {
	dbConfig, err := b.configRepo.ReplaceActiveConfig(ctx, utilityconfigs.ReplaceActiveConfigParams{
		PropertyID:           cfg.PropertyID,
		ContractID:           pgconv.TextPtr(cfg.ContractID),
		ElectricityUnitPrice: pgconv.Numeric(cfg.ElectricityUnitPrice),
		WaterUnitPrice:       pgconv.Numeric(cfg.WaterUnitPrice),
		InternetPrice:        pgconv.Numeric(cfg.InternetPrice),
		ParkingPrice:         pgconv.Numeric(cfg.ParkingPrice),
		CleaningPrice:        pgconv.Numeric(cfg.CleaningPrice),
		MaintenancePrice:     pgconv.Numeric(cfg.MaintenancePrice),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to save utility config"}
	}

	return convertDBConfigToModel(dbConfig), nil
}
