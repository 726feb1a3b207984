package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/bills"
	"rentbill.app/billing/repository/pgconv"
)

const contractMonthConstraint = "bills_contract_month_key"

// CreateBill stores a new draft bill with server computed amounts
func (b *business) CreateBill(ctx context.Context, bill *model.Bill) (*model.Bill, error) {
	charges := model.ComputeCharges(bill.BillDraft)
	if meters := bill.NegativeDeltas(); len(meters) > 0 {
		rlog.Warn("bill has negative meter delta", "contract_id", bill.ContractID, "billing_month", bill.BillingMonth, "meters", meters)
	}

	d := bill.BillDraft
	dbBill, err := b.billRepo.CreateBill(ctx, bills.CreateBillParams{
		ContractID:           d.ContractID,
		PropertyID:           bill.PropertyID,
		BillingMonth:         d.BillingMonth,
		MonthlyRent:          pgconv.Numeric(d.MonthlyRent),
		RentalDeposit:        pgconv.Numeric(d.RentalDeposit),
		ElectricityOld:       pgconv.Numeric(d.ElectricityOld),
		ElectricityNew:       pgconv.Numeric(d.ElectricityNew),
		ElectricityUnitPrice: pgconv.Numeric(d.ElectricityUnitPrice),
		WaterOld:             pgconv.Numeric(d.WaterOld),
		WaterNew:             pgconv.Numeric(d.WaterNew),
		WaterUnitPrice:       pgconv.Numeric(d.WaterUnitPrice),
		InternetPrice:        pgconv.Numeric(d.InternetPrice),
		ParkingPrice:         pgconv.Numeric(d.ParkingPrice),
		CleaningPrice:        pgconv.Numeric(d.CleaningPrice),
		MaintenancePrice:     pgconv.Numeric(d.MaintenancePrice),
		OtherDescription:     pgconv.Text(d.OtherDescription),
		OtherPrice:           pgconv.Numeric(d.OtherPrice),
		Notes:                pgconv.Text(d.Notes),
		ElectricityAmount:    pgconv.Numeric(charges.ElectricityAmount),
		WaterAmount:          pgconv.Numeric(charges.WaterAmount),
		TotalAmount:          pgconv.Numeric(charges.Total),
		Status:               string(model.BillStatusDraft),
		IdempotencyKey:       bill.IdempotencyKey,
	})
	if err != nil {
		if dupErr := duplicateBillError(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create bill"}
	}

	return convertDBBillToModel(dbBill), nil
}

// duplicateBillError maps unique violations to AlreadyExists, nil otherwise.
func duplicateBillError(err error) error {
	var e *pgconn.PgError
	if !errors.As(err, &e) || e.Code != pgerrcode.UniqueViolation {
		return nil
	}
	if e.ConstraintName == contractMonthConstraint {
		return &errs.Error{Code: errs.AlreadyExists, Message: "a bill for this contract and billing month already exists"}
	}
	return &errs.Error{Code: errs.AlreadyExists, Message: "bill is duplicated"}
}
