package billing

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"rentbill.app/billing/model"
)

type ListBillsResponse struct {
	Bills []*model.Bill `json:"bills"`
}

// ListContractBills returns the bills of a contract, latest billing month first.
//
//encore:api public path=/billing/contract/:contractID method=GET
func (s *Service) ListContractBills(ctx context.Context, contractID string) (*ListBillsResponse, error) {
	if strings.TrimSpace(contractID) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "contract ID is required"}
	}

	result, err := s.bills.ListContractBills(ctx, contractID)
	if err != nil {
		rlog.Error("failed to list bills", "error", err, "contract_id", contractID)
		return nil, err
	}

	return &ListBillsResponse{
		Bills: result,
	}, nil
}
