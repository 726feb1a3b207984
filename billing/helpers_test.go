package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"rentbill.app/billing/mocks/business/bill_business"
	"rentbill.app/billing/mocks/business/utility_config_business"
	"rentbill.app/billing/model"
)

type testService struct {
	*Service
	bills    *bill_business.MockBusiness
	configs  *utility_config_business.MockBusiness
	temporal *mocks.Client
}

func newTestService(t *testing.T) *testService {
	ctrl := gomock.NewController(t)
	bills := bill_business.NewMockBusiness(ctrl)
	configs := utility_config_business.NewMockBusiness(ctrl)
	temporal := mocks.NewClient(t)

	return &testService{
		Service: &Service{
			bills:    bills,
			configs:  configs,
			temporal: temporal,
			cfg:      Config{TaskQueue: "test-queue", PaymentTermDays: 10},
		},
		bills:    bills,
		configs:  configs,
		temporal: temporal,
	}
}

// runAsyncInline makes follow-up work synchronous for the test and returns
// the errors it produced.
func runAsyncInline(t *testing.T) *[]error {
	var failures []error
	orig := runAsync
	runAsync = func(op string, billID int32, fn func(ctx context.Context) error) {
		if err := fn(context.Background()); err != nil {
			failures = append(failures, err)
		}
	}
	t.Cleanup(func() { runAsync = orig })
	return &failures
}

func sampleDraft() model.BillDraft {
	return model.BillDraft{
		ContractID:           "contract-1",
		BillingMonth:         "2024-06",
		MonthlyRent:          decimal.RequireFromString("5000000"),
		ElectricityOld:       decimal.RequireFromString("50"),
		ElectricityNew:       decimal.RequireFromString("100"),
		ElectricityUnitPrice: decimal.RequireFromString("3500"),
		WaterOld:             decimal.RequireFromString("10"),
		WaterNew:             decimal.RequireFromString("15"),
		WaterUnitPrice:       decimal.RequireFromString("15000"),
		InternetPrice:        decimal.RequireFromString("200000"),
		ParkingPrice:         decimal.RequireFromString("100000"),
		CleaningPrice:        decimal.RequireFromString("50000"),
	}
}

func sampleBill(id int32, status model.BillStatus) *model.Bill {
	return &model.Bill{
		ID:                id,
		PropertyID:        "property-1",
		BillDraft:         sampleDraft(),
		ElectricityAmount: decimal.RequireFromString("175000"),
		WaterAmount:       decimal.RequireFromString("75000"),
		TotalAmount:       decimal.RequireFromString("5600000"),
		Status:            status,
		IdempotencyKey:    "key-1",
		CreatedAt:         time.Date(2024, time.June, 28, 10, 0, 0, 0, time.UTC),
	}
}
