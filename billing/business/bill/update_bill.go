package bill

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/bills"
	"rentbill.app/billing/repository/pgconv"
)

// UpdateBill replaces the editable fields of a draft bill and recomputes its amounts
func (b *business) UpdateBill(ctx context.Context, id int32, draft model.BillDraft) (*model.Bill, error) {
	var result *model.Bill

	err := b.stateMachine.GetBillWithLock(ctx, id, func(tx bills.Querier, current bills.Bill) error {
		if !model.BillStatus(current.Status).Editable() {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "only draft bills can be updated"}
		}
		if draft.ContractID != "" && draft.ContractID != current.ContractID {
			return &errs.Error{Code: errs.InvalidArgument, Message: "contract of a bill cannot be changed"}
		}

		charges := model.ComputeCharges(draft)
		if meters := draft.NegativeDeltas(); len(meters) > 0 {
			rlog.Warn("bill has negative meter delta", "bill_id", id, "meters", meters)
		}

		updated, err := tx.UpdateBillDraft(ctx, bills.UpdateBillDraftParams{
			ID:                   id,
			BillingMonth:         draft.BillingMonth,
			MonthlyRent:          pgconv.Numeric(draft.MonthlyRent),
			RentalDeposit:        pgconv.Numeric(draft.RentalDeposit),
			ElectricityOld:       pgconv.Numeric(draft.ElectricityOld),
			ElectricityNew:       pgconv.Numeric(draft.ElectricityNew),
			ElectricityUnitPrice: pgconv.Numeric(draft.ElectricityUnitPrice),
			WaterOld:             pgconv.Numeric(draft.WaterOld),
			WaterNew:             pgconv.Numeric(draft.WaterNew),
			WaterUnitPrice:       pgconv.Numeric(draft.WaterUnitPrice),
			InternetPrice:        pgconv.Numeric(draft.InternetPrice),
			ParkingPrice:         pgconv.Numeric(draft.ParkingPrice),
			CleaningPrice:        pgconv.Numeric(draft.CleaningPrice),
			MaintenancePrice:     pgconv.Numeric(draft.MaintenancePrice),
			OtherDescription:     pgconv.Text(draft.OtherDescription),
			OtherPrice:           pgconv.Numeric(draft.OtherPrice),
			Notes:                pgconv.Text(draft.Notes),
			ElectricityAmount:    pgconv.Numeric(charges.ElectricityAmount),
			WaterAmount:          pgconv.Numeric(charges.WaterAmount),
			TotalAmount:          pgconv.Numeric(charges.Total),
		})
		if err != nil {
			if dupErr := duplicateBillError(err); dupErr != nil {
				return dupErr
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to update bill"}
		}

		result = convertDBBillToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
