package billform

import (
	"context"

	"rentbill.app/billing/model"
)

// Gateway is the part of the billing API the form needs. It is satisfied by
// *billclient.Client.
type Gateway interface {
	ListContractBills(ctx context.Context, contractID string) ([]model.Bill, error)
	GetBill(ctx context.Context, id int32) (*model.Bill, error)
	GetActiveUtilityConfig(ctx context.Context, contractID, propertyID string) (*model.UtilityPriceConfig, error)
	CreateBill(ctx context.Context, idempotencyKey, propertyID string, draft model.BillDraft) (*model.Bill, error)
	UpdateBill(ctx context.Context, id int32, draft model.BillDraft) (*model.Bill, error)
	SendBill(ctx context.Context, id int32) (*model.Bill, error)
}
