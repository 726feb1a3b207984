package billing

import (
	"context"

	"encore.dev/rlog"

	"rentbill.app/billing/model"
)

type UpdateBillRequest struct {
	Draft model.BillDraft `json:"draft"`
}

//encore:api public path=/billing/:id method=PUT
func (s *Service) UpdateBill(ctx context.Context, id int, req *UpdateBillRequest) (*BillResponse, error) {
	billID, err := toBillID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.bills.UpdateBill(ctx, billID, req.Draft)
	if err != nil {
		rlog.Error("failed to update bill", "error", err, "id", id)
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

func (r *UpdateBillRequest) Validate() error {
	return validateDraft(r.Draft)
}
