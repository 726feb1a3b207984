package bill

import (
	"context"
	"time"

	"rentbill.app/billing/model"
)

// SendBill moves a draft bill to pending with the given due date
func (b *business) SendBill(ctx context.Context, id int32, dueDate time.Time) (*model.Bill, error) {
	dbBill, err := b.stateMachine.TransitionToPending(ctx, id, dueDate)
	if err != nil {
		return nil, err
	}
	return convertDBBillToModel(dbBill), nil
}
