package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"rentbill.app/billing/business/bill"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	BillBusiness bill.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(billBusiness bill.Business) {
	if billBusiness == nil {
		activityDeps = nil
		return
	}
	activityDeps = &ActivityDependencies{
		BillBusiness: billBusiness,
	}
}

// MarkOverdueActivity flags an unpaid bill as overdue
func MarkOverdueActivity(ctx context.Context, billID int32) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing mark overdue activity", "billID", billID)

	if activityDeps == nil || activityDeps.BillBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.BillBusiness.MarkOverdue(ctx, billID)
	if err != nil {
		logger.Error("Failed to mark bill overdue", "billID", billID, "error", err)
		return err
	}

	logger.Info("Successfully marked bill overdue", "billID", billID)
	return nil
}
