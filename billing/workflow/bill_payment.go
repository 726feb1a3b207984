package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// BillPaymentWorkflowParams contains parameters for starting the payment workflow
type BillPaymentWorkflowParams struct {
	BillID  int32     `json:"bill_id"`
	DueDate time.Time `json:"due_date"`
}

// BillPayment watches a sent bill until it is paid or its due date passes.
// A bill still unpaid at the due date is marked overdue.
func BillPayment(ctx workflow.Context, params BillPaymentWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting bill payment workflow", "billID", params.BillID, "dueDate", params.DueDate)

	paidCh := workflow.GetSignalChannel(ctx, BillPaidSignalName)

	wait := params.DueDate.Sub(workflow.Now(ctx))
	if wait <= 0 {
		// Drain a payment that raced the start of the workflow.
		var signal BillPaidSignal
		if paidCh.ReceiveAsync(&signal) {
			logger.Info("Bill paid before due date check", "billID", params.BillID)
			return nil
		}
		logger.Warn("Due date already passed, marking overdue", "billID", params.BillID)
		return markOverdue(ctx, params.BillID)
	}

	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	timer := workflow.NewTimer(timerCtx, wait)

	paid := false
	selector := workflow.NewSelector(ctx)

	selector.AddReceive(paidCh, func(c workflow.ReceiveChannel, more bool) {
		var signal BillPaidSignal
		c.Receive(ctx, &signal)
		logger.Info("Received bill paid signal", "billID", params.BillID)
		paid = true
		cancelTimer()
	})

	selector.AddFuture(timer, func(f workflow.Future) {
		logger.Info("Due date reached", "billID", params.BillID)
	})

	selector.Select(ctx)

	if paid {
		logger.Info("Bill payment workflow completed", "billID", params.BillID, "outcome", "paid")
		return nil
	}

	if err := markOverdue(ctx, params.BillID); err != nil {
		logger.Error("Failed to mark bill overdue", "billID", params.BillID, "error", err)
		return err
	}

	logger.Info("Bill payment workflow completed", "billID", params.BillID, "outcome", "overdue")
	return nil
}

// markOverdue executes the MarkOverdue activity
func markOverdue(ctx workflow.Context, billID int32) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, MarkOverdueActivity, billID).Get(ctx, nil)
}
