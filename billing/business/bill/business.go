package bill

import (
	"context"
	"time"

	"rentbill.app/billing/domain"
	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/bills"
)

type Business interface {
	CreateBill(ctx context.Context, bill *model.Bill) (*model.Bill, error)
	UpdateBill(ctx context.Context, id int32, draft model.BillDraft) (*model.Bill, error)
	GetBill(ctx context.Context, id int32) (*model.Bill, error)
	ListContractBills(ctx context.Context, contractID string) ([]*model.Bill, error)

	SendBill(ctx context.Context, id int32, dueDate time.Time) (*model.Bill, error)
	PayBill(ctx context.Context, id int32) (*model.Bill, error)
	MarkOverdue(ctx context.Context, id int32) error
}

// business handles business logic for rental bills
type business struct {
	billRepo     bills.Querier
	stateMachine domain.StateMachine
}

// NewBillBusiness creates the bill business layer
func NewBillBusiness(billRepo bills.Querier, stateMachine domain.StateMachine) Business {
	return &business{
		billRepo:     billRepo,
		stateMachine: stateMachine,
	}
}
