package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"rentbill.app/billing/model"
)

type CreateBillRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	PropertyID string          `json:"property_id" validate:"required,max=64"`
	Draft      model.BillDraft `json:"draft"`
}

type BillResponse struct {
	Bill model.Bill `json:"bill"`
}

//encore:api public path=/billing method=POST tag:idempotency
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) (*BillResponse, error) {
	result, err := s.bills.CreateBill(ctx, &model.Bill{
		PropertyID:     req.PropertyID,
		BillDraft:      req.Draft,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to create bill", "error", err, "contract_id", req.Draft.ContractID)
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

// Validate implements validation for CreateBillRequest using go-playground/validator
func (r *CreateBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if strings.TrimSpace(r.Draft.ContractID) == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "contract_id is required"}
	}
	return validateDraft(r.Draft)
}

// validateDraft checks the fields of a draft the server cannot default.
func validateDraft(d model.BillDraft) error {
	if !model.ValidBillingMonth(d.BillingMonth) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "billing_month must be formatted as YYYY-MM"}
	}
	if err := validate.Var(d.OtherDescription, "max=255"); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "other_description is too long"}
	}
	if err := validate.Var(d.Notes, "max=2000"); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "notes are too long"}
	}

	prices := []struct {
		field string
		value decimal.Decimal
	}{
		{"monthly_rent", d.MonthlyRent},
		{"rental_deposit", d.RentalDeposit},
		{"electricity_unit_price", d.ElectricityUnitPrice},
		{"water_unit_price", d.WaterUnitPrice},
		{"internet_price", d.InternetPrice},
		{"parking_price", d.ParkingPrice},
		{"cleaning_price", d.CleaningPrice},
		{"maintenance_price", d.MaintenancePrice},
		{"other_price", d.OtherPrice},
	}
	for _, p := range prices {
		if err := checkStorable(p.field, p.value); err != nil {
			return err
		}
		if p.value.IsNegative() {
			return &errs.Error{Code: errs.InvalidArgument, Message: p.field + " must not be negative"}
		}
	}

	// readings may go backwards, so they are only checked for storage
	for _, m := range []struct {
		field string
		value decimal.Decimal
	}{
		{"electricity_old", d.ElectricityOld},
		{"electricity_new", d.ElectricityNew},
		{"water_old", d.WaterOld},
		{"water_new", d.WaterNew},
	} {
		if err := checkStorable(m.field, m.value); err != nil {
			return err
		}
	}
	return nil
}

// storedScale and storedMax follow the NUMERIC(18, 4) columns.
const storedScale = 4

var storedMax = decimal.New(1, 18-storedScale)

// checkStorable rejects values the database would round or overflow.
func checkStorable(field string, v decimal.Decimal) error {
	if !v.Equal(v.Round(storedScale)) {
		return &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("%s must have at most %d decimal places", field, storedScale)}
	}
	if v.Abs().GreaterThanOrEqual(storedMax) {
		return &errs.Error{Code: errs.InvalidArgument, Message: field + " is out of range"}
	}
	return nil
}
