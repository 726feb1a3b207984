package billing

import (
	"context"
	"errors"

	"go.temporal.io/api/serviceerror"

	"encore.dev/rlog"

	"rentbill.app/billing/workflow"
)

//encore:api public path=/billing/:id/pay method=POST
func (s *Service) PayBill(ctx context.Context, id int) (*BillResponse, error) {
	billID, err := toBillID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.bills.PayBill(ctx, billID)
	if err != nil {
		rlog.Error("failed to pay bill", "error", err, "id", id)
		return nil, err
	}

	if result.WorkflowID != nil {
		workflowID := *result.WorkflowID
		runAsync("signal_bill_paid", billID, func(ctx context.Context) error {
			err := s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.BillPaidSignalName, workflow.BillPaidSignal{BillID: billID})

			// the workflow ends once the bill went overdue
			var notFound *serviceerror.NotFound
			if errors.As(err, &notFound) {
				rlog.Info("payment workflow already finished", "bill_id", billID, "workflow_id", workflowID)
				return nil
			}
			return err
		})
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}
