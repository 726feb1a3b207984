package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"rentbill.app/billing/model"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

func TestCreateBill(t *testing.T) {
	testCases := []struct {
		name               string
		request            *CreateBillRequest
		mockBusinessReturn *model.Bill
		mockBusinessError  error
		expectedError      string
	}{
		{
			name: "successful_bill_creation",
			request: &CreateBillRequest{
				IdempotencyKey: "key-1",
				PropertyID:     "property-1",
				Draft:          sampleDraft(),
			},
			mockBusinessReturn: sampleBill(1, model.BillStatusDraft),
		},
		{
			name: "duplicate_contract_month",
			request: &CreateBillRequest{
				IdempotencyKey: "key-2",
				PropertyID:     "property-1",
				Draft:          sampleDraft(),
			},
			mockBusinessError: &errs.Error{Code: errs.AlreadyExists, Message: "a bill for this contract and billing month already exists"},
			expectedError:     "already exists",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)

			svc.bills.EXPECT().
				CreateBill(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, b *model.Bill) (*model.Bill, error) {
					assert.Equal(t, tc.request.IdempotencyKey, b.IdempotencyKey)
					assert.Equal(t, tc.request.PropertyID, b.PropertyID)
					assert.Equal(t, tc.request.Draft.ContractID, b.ContractID)
					return tc.mockBusinessReturn, tc.mockBusinessError
				}).
				Times(1)

			response, err := svc.CreateBill(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}

			assert.NoError(t, err)
			if assert.NotNil(t, response) {
				assert.Equal(t, tc.mockBusinessReturn.ID, response.Bill.ID)
				assert.Equal(t, model.BillStatusDraft, response.Bill.Status)
				assert.True(t, decimal.RequireFromString("5600000").Equal(response.Bill.TotalAmount))
			}
		})
	}
}

func TestCreateBillRequest_Validation(t *testing.T) {
	withDraft := func(mutate func(d *model.BillDraft)) *CreateBillRequest {
		d := sampleDraft()
		mutate(&d)
		return &CreateBillRequest{PropertyID: "property-1", Draft: d}
	}

	testCases := []struct {
		name          string
		request       *CreateBillRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: withDraft(func(d *model.BillDraft) {}),
		},
		{
			name:          "missing_property",
			request:       &CreateBillRequest{Draft: sampleDraft()},
			expectedError: "required",
		},
		{
			name:          "missing_contract",
			request:       withDraft(func(d *model.BillDraft) { d.ContractID = " " }),
			expectedError: "contract_id is required",
		},
		{
			name:          "bad_billing_month",
			request:       withDraft(func(d *model.BillDraft) { d.BillingMonth = "2024-6" }),
			expectedError: "billing_month must be formatted as YYYY-MM",
		},
		{
			name:          "negative_price",
			request:       withDraft(func(d *model.BillDraft) { d.ParkingPrice = decimal.NewFromInt(-1) }),
			expectedError: "parking_price must not be negative",
		},
		{
			name:          "price_with_too_many_decimals",
			request:       withDraft(func(d *model.BillDraft) { d.WaterUnitPrice = decimal.RequireFromString("15000.00005") }),
			expectedError: "water_unit_price must have at most 4 decimal places",
		},
		{
			name:          "reading_with_too_many_decimals",
			request:       withDraft(func(d *model.BillDraft) { d.ElectricityNew = decimal.RequireFromString("100.12345") }),
			expectedError: "electricity_new must have at most 4 decimal places",
		},
		{
			name:    "trailing_zeros_are_fine",
			request: withDraft(func(d *model.BillDraft) { d.WaterNew = decimal.RequireFromString("15.000000") }),
		},
		{
			name:    "four_decimals_are_fine",
			request: withDraft(func(d *model.BillDraft) { d.ElectricityUnitPrice = decimal.RequireFromString("3500.1234") }),
		},
		{
			name:          "price_out_of_range",
			request:       withDraft(func(d *model.BillDraft) { d.MonthlyRent = decimal.New(1, 14) }),
			expectedError: "monthly_rent is out of range",
		},
		{
			name:          "negative_reading_out_of_range",
			request:       withDraft(func(d *model.BillDraft) { d.WaterOld = decimal.New(-1, 15) }),
			expectedError: "water_old is out of range",
		},
		{
			name: "negative_meter_delta_is_allowed",
			request: withDraft(func(d *model.BillDraft) {
				d.ElectricityOld = decimal.NewFromInt(200)
				d.ElectricityNew = decimal.NewFromInt(100)
			}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
