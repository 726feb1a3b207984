package bill

import (
	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/bills"
	"rentbill.app/billing/repository/pgconv"
)

// convertDBBillToModel converts a database Bill to a domain model Bill
func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	bill := &model.Bill{
		ID:         dbBill.ID,
		PropertyID: dbBill.PropertyID,
		BillDraft: model.BillDraft{
			ContractID:           dbBill.ContractID,
			BillingMonth:         dbBill.BillingMonth,
			MonthlyRent:          pgconv.Decimal(dbBill.MonthlyRent),
			RentalDeposit:        pgconv.Decimal(dbBill.RentalDeposit),
			ElectricityOld:       pgconv.Decimal(dbBill.ElectricityOld),
			ElectricityNew:       pgconv.Decimal(dbBill.ElectricityNew),
			ElectricityUnitPrice: pgconv.Decimal(dbBill.ElectricityUnitPrice),
			WaterOld:             pgconv.Decimal(dbBill.WaterOld),
			WaterNew:             pgconv.Decimal(dbBill.WaterNew),
			WaterUnitPrice:       pgconv.Decimal(dbBill.WaterUnitPrice),
			InternetPrice:        pgconv.Decimal(dbBill.InternetPrice),
			ParkingPrice:         pgconv.Decimal(dbBill.ParkingPrice),
			CleaningPrice:        pgconv.Decimal(dbBill.CleaningPrice),
			MaintenancePrice:     pgconv.Decimal(dbBill.MaintenancePrice),
			OtherDescription:     dbBill.OtherDescription.String,
			OtherPrice:           pgconv.Decimal(dbBill.OtherPrice),
			Notes:                dbBill.Notes.String,
		},
		ElectricityAmount: pgconv.Decimal(dbBill.ElectricityAmount),
		WaterAmount:       pgconv.Decimal(dbBill.WaterAmount),
		TotalAmount:       pgconv.Decimal(dbBill.TotalAmount),
		Status:            model.BillStatus(dbBill.Status),
		DueDate:           pgconv.TimePtr(dbBill.DueDate),
		SentAt:            pgconv.TimePtr(dbBill.SentAt),
		PaidAt:            pgconv.TimePtr(dbBill.PaidAt),
		IdempotencyKey:    dbBill.IdempotencyKey,
		WorkflowID:        pgconv.StringPtr(dbBill.WorkflowID),
		CreatedAt:         dbBill.CreatedAt.Time,
		UpdatedAt:         dbBill.UpdatedAt.Time,
	}

	return bill
}

func convertDBBillsToModel(dbBills []bills.Bill) []*model.Bill {
	result := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		result[i] = convertDBBillToModel(dbBill)
	}
	return result
}
