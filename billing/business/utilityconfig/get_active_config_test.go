package utilityconfig

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentbill.app/billing/mocks/repository/utility_config_repo"
	"rentbill.app/billing/repository/pgconv"
	"rentbill.app/billing/repository/utilityconfigs"
)

func dbConfig(id int32, contractID string) utilityconfigs.UtilityPriceConfig {
	return utilityconfigs.UtilityPriceConfig{
		ID:                   id,
		ContractID:           pgconv.Text(contractID),
		PropertyID:           "property-1",
		ElectricityUnitPrice: pgconv.Numeric(decimal.RequireFromString("3500")),
		WaterUnitPrice:       pgconv.Numeric(decimal.RequireFromString("15000")),
		InternetPrice:        pgconv.Numeric(decimal.RequireFromString("200000")),
		Active:               true,
	}
}

func TestGetActiveConfig(t *testing.T) {
	testCases := []struct {
		name               string
		contractID         string
		propertyID         string
		contractReturn     *utilityconfigs.UtilityPriceConfig
		contractError      error
		expectPropertyCall bool
		propertyReturn     *utilityconfigs.UtilityPriceConfig
		propertyError      error
		expectedID         int32
		expectedError      string
	}{
		{
			name:           "contract_config_wins",
			contractID:     "contract-1",
			propertyID:     "property-1",
			contractReturn: func() *utilityconfigs.UtilityPriceConfig { c := dbConfig(7, "contract-1"); return &c }(),
			expectedID:     7,
		},
		{
			name:               "falls_back_to_property",
			contractID:         "contract-1",
			propertyID:         "property-1",
			contractError:      pgx.ErrNoRows,
			expectPropertyCall: true,
			propertyReturn:     func() *utilityconfigs.UtilityPriceConfig { c := dbConfig(3, ""); return &c }(),
			expectedID:         3,
		},
		{
			name:               "property_only_lookup",
			propertyID:         "property-1",
			expectPropertyCall: true,
			propertyReturn:     func() *utilityconfigs.UtilityPriceConfig { c := dbConfig(3, ""); return &c }(),
			expectedID:         3,
		},
		{
			name:               "nothing_active",
			contractID:         "contract-1",
			propertyID:         "property-1",
			contractError:      pgx.ErrNoRows,
			expectPropertyCall: true,
			propertyError:      pgx.ErrNoRows,
			expectedError:      "no active utility config",
		},
		{
			name:          "contract_lookup_fails",
			contractID:    "contract-1",
			propertyID:    "property-1",
			contractError: errors.New("connection reset"),
			expectedError: "failed to get utility config",
		},
		{
			name:               "property_lookup_fails",
			propertyID:         "property-1",
			expectPropertyCall: true,
			propertyError:      errors.New("connection reset"),
			expectedError:      "failed to get utility config",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := utility_config_repo.NewMockQuerier(ctrl)
			business := &business{configRepo: mockRepo}

			if tc.contractID != "" {
				var ret utilityconfigs.UtilityPriceConfig
				if tc.contractReturn != nil {
					ret = *tc.contractReturn
				}
				mockRepo.EXPECT().
					GetActiveConfigForContract(gomock.Any(), pgtype.Text{String: tc.contractID, Valid: true}).
					Return(ret, tc.contractError)
			}
			if tc.expectPropertyCall {
				var ret utilityconfigs.UtilityPriceConfig
				if tc.propertyReturn != nil {
					ret = *tc.propertyReturn
				}
				mockRepo.EXPECT().
					GetActiveConfigForProperty(gomock.Any(), tc.propertyID).
					Return(ret, tc.propertyError)
			}

			result, err := business.GetActiveConfig(context.Background(), tc.contractID, tc.propertyID)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			if assert.NotNil(t, result) {
				assert.Equal(t, tc.expectedID, result.ID)
				assert.True(t, decimal.RequireFromString("3500").Equal(result.ElectricityUnitPrice))
				assert.True(t, result.MaintenancePrice.IsZero())
			}
		})
	}
}
