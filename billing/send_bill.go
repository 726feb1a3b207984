package billing

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"rentbill.app/billing/model"
	"rentbill.app/billing/workflow"
)

type SendBillRequest struct {
	// DueDate defaults to the configured payment term from now.
	DueDate *time.Time `json:"due_date,omitempty"`
}

//encore:api public path=/billing/:id/send method=POST
func (s *Service) SendBill(ctx context.Context, id int, req *SendBillRequest) (*BillResponse, error) {
	billID, err := toBillID(id)
	if err != nil {
		return nil, err
	}

	dueDate := time.Now().Add(s.cfg.paymentTerm())
	if req != nil && req.DueDate != nil {
		dueDate = *req.DueDate
	}

	result, err := s.bills.SendBill(ctx, billID, dueDate)
	if err != nil {
		rlog.Error("failed to send bill", "error", err, "id", id)
		return nil, err
	}

	if wfErr := s.startPaymentWorkflow(ctx, result); wfErr != nil {
		// the bill is sent either way; the workflow only drives the overdue transition
		rlog.Error("workflow start issue", "bill_id", result.ID, "workflow_id", model.BillWorkflowID(result.IdempotencyKey), "error", wfErr)
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

func (r *SendBillRequest) Validate() error {
	if r.DueDate != nil && !r.DueDate.After(time.Now()) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "due_date must be in the future"}
	}
	return nil
}

// startPaymentWorkflow starts the workflow that watches the bill's due date
func (s *Service) startPaymentWorkflow(ctx context.Context, bill *model.Bill) error {
	if bill.DueDate == nil {
		return fmt.Errorf("bill %d has no due date", bill.ID)
	}
	workflowID := model.BillWorkflowID(bill.IdempotencyKey)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.cfg.TaskQueue,
	}

	params := workflow.BillPaymentWorkflowParams{
		BillID:  bill.ID,
		DueDate: *bill.DueDate,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.BillPayment, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "bill_id", bill.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
