package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"rentbill.app/billing/model"
)

// ListContractBills returns every bill of a contract, latest billing month first
func (b *business) ListContractBills(ctx context.Context, contractID string) ([]*model.Bill, error) {
	dbBills, err := b.billRepo.ListBillsByContract(ctx, contractID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*model.Bill{}, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	return convertDBBillsToModel(dbBills), nil
}
