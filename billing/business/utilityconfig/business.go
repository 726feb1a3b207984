package utilityconfig

import (
	"context"

	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/utilityconfigs"
)

type Business interface {
	GetActiveConfig(ctx context.Context, contractID, propertyID string) (*model.UtilityPriceConfig, error)
	SaveConfig(ctx context.Context, cfg *model.UtilityPriceConfig) (*model.UtilityPriceConfig, error)
}

type business struct {
	configRepo utilityconfigs.Querier
}

func NewUtilityConfigBusiness(configRepo utilityconfigs.Querier) Business {
	return &business{
		configRepo: configRepo,
	}
}
