package bill

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentbill.app/billing/mocks/domain/state_machine"
	"rentbill.app/billing/mocks/repository/bill_repo"
	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/bills"
	"rentbill.app/billing/repository/pgconv"
)

func TestUpdateBill(t *testing.T) {
	draft := model.BillDraft{
		ContractID:           "contract-1",
		BillingMonth:         "2024-07",
		MonthlyRent:          decimal.RequireFromString("5000000"),
		ElectricityOld:       decimal.RequireFromString("100"),
		ElectricityNew:       decimal.RequireFromString("160"),
		ElectricityUnitPrice: decimal.RequireFromString("3500"),
		Notes:                "July",
	}

	testCases := []struct {
		name          string
		current       bills.Bill
		draft         model.BillDraft
		updateError   error
		expectUpdate  bool
		expectedError string
	}{
		{
			name:         "happy_case",
			current:      dbBill(1, "draft"),
			draft:        draft,
			expectUpdate: true,
		},
		{
			name:    "empty_contract_keeps_current",
			current: dbBill(1, "draft"),
			draft: func() model.BillDraft {
				d := draft
				d.ContractID = ""
				return d
			}(),
			expectUpdate: true,
		},
		{
			name:          "sent_bill_is_not_editable",
			current:       dbBill(1, "pending"),
			draft:         draft,
			expectedError: "only draft bills can be updated",
		},
		{
			name:    "contract_cannot_change",
			current: dbBill(1, "draft"),
			draft: func() model.BillDraft {
				d := draft
				d.ContractID = "contract-2"
				return d
			}(),
			expectedError: "contract of a bill cannot be changed",
		},
		{
			name:          "update_fails",
			current:       dbBill(1, "draft"),
			draft:         draft,
			updateError:   errors.New("deadlock"),
			expectUpdate:  true,
			expectedError: "failed to update bill",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTx := bill_repo.NewMockQuerier(ctrl)
			mockStateMachine := state_machine.NewMockStateMachine(ctrl)
			business := &business{stateMachine: mockStateMachine}

			mockStateMachine.EXPECT().
				GetBillWithLock(gomock.Any(), int32(1), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int32, fn func(bills.Querier, bills.Bill) error) error {
					return fn(mockTx, tc.current)
				})

			if tc.expectUpdate {
				mockTx.EXPECT().
					UpdateBillDraft(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg bills.UpdateBillDraftParams) (bills.Bill, error) {
						assert.Equal(t, int32(1), arg.ID)
						assert.Equal(t, "2024-07", arg.BillingMonth)
						assert.True(t, decimal.RequireFromString("210000").Equal(pgconv.Decimal(arg.ElectricityAmount)))
						assert.True(t, decimal.RequireFromString("5210000").Equal(pgconv.Decimal(arg.TotalAmount)))
						assert.Equal(t, "July", arg.Notes.String)
						if tc.updateError != nil {
							return bills.Bill{}, tc.updateError
						}
						updated := tc.current
						updated.BillingMonth = arg.BillingMonth
						updated.TotalAmount = arg.TotalAmount
						updated.Notes = arg.Notes
						return updated, nil
					})
			}

			result, err := business.UpdateBill(context.Background(), 1, tc.draft)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			if assert.NotNil(t, result) {
				assert.Equal(t, "2024-07", result.BillingMonth)
				assert.Equal(t, "July", result.Notes)
				assert.True(t, decimal.RequireFromString("5210000").Equal(result.TotalAmount))
			}
		})
	}
}
