package bill

import (
	"context"

	"rentbill.app/billing/model"
)

// PayBill records payment of a pending or overdue bill
func (b *business) PayBill(ctx context.Context, id int32) (*model.Bill, error) {
	dbBill, err := b.stateMachine.TransitionToPaid(ctx, id)
	if err != nil {
		return nil, err
	}
	return convertDBBillToModel(dbBill), nil
}

// MarkOverdue flags a pending bill whose due date passed without payment
func (b *business) MarkOverdue(ctx context.Context, id int32) error {
	_, err := b.stateMachine.TransitionToOverdue(ctx, id)
	return err
}
