package utilityconfig

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/pgconv"
	"rentbill.app/billing/repository/utilityconfigs"
)

// GetActiveConfig resolves the price config a new bill should start from.
// A config bound to the contract wins over the property wide one.
func (b *business) GetActiveConfig(ctx context.Context, contractID, propertyID string) (*model.UtilityPriceConfig, error) {
	if contractID != "" {
		dbConfig, err := b.configRepo.GetActiveConfigForContract(ctx, pgconv.Text(contractID))
		switch {
		case err == nil:
			return convertDBConfigToModel(dbConfig), nil
		case !errors.Is(err, pgx.ErrNoRows):
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to get utility config"}
		}
	}

	if propertyID != "" {
		dbConfig, err := b.configRepo.GetActiveConfigForProperty(ctx, propertyID)
		switch {
		case err == nil:
			return convertDBConfigToModel(dbConfig), nil
		case !errors.Is(err, pgx.ErrNoRows):
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to get utility config"}
		}
	}

	return nil, &errs.Error{Code: errs.NotFound, Message: "no active utility config"}
}

func convertDBConfigToModel(dbConfig utilityconfigs.UtilityPriceConfig) *model.UtilityPriceConfig {
	return &model.UtilityPriceConfig{
		ID:                   dbConfig.ID,
		ContractID:           pgconv.StringPtr(dbConfig.ContractID),
		PropertyID:           dbConfig.PropertyID,
		ElectricityUnitPrice: pgconv.Decimal(dbConfig.ElectricityUnitPrice),
		WaterUnitPrice:       pgconv.Decimal(dbConfig.WaterUnitPrice),
		InternetPrice:        pgconv.Decimal(dbConfig.InternetPrice),
		ParkingPrice:         pgconv.Decimal(dbConfig.ParkingPrice),
		CleaningPrice:        pgconv.Decimal(dbConfig.CleaningPrice),
		MaintenancePrice:     pgconv.Decimal(dbConfig.MaintenancePrice),
		Active:               dbConfig.Active,
		CreatedAt:            dbConfig.CreatedAt.Time,
		UpdatedAt:            dbConfig.UpdatedAt.Time,
	}
}
