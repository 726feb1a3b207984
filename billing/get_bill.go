package billing

import (
	"context"
	"math"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

//encore:api public path=/billing/:id method=GET
func (s *Service) GetBill(ctx context.Context, id int) (*BillResponse, error) {
	billID, err := toBillID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.bills.GetBill(ctx, billID)
	if err != nil {
		if errs.Code(err) == errs.NotFound {
			rlog.Info("bill not found", "id", id)
		} else {
			rlog.Error("failed to get bill", "error", err, "id", id)
		}
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

// toBillID checks a bill id taken from the request path.
func toBillID(id int) (int32, error) {
	if id <= 0 || id > math.MaxInt32 {
		return 0, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}
	return int32(id), nil
}
