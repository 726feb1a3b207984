package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"rentbill.app/billing/model"
)

func TestUpdateBill(t *testing.T) {
	t.Run("updates_draft", func(t *testing.T) {
		svc := newTestService(t)
		draft := sampleDraft()
		draft.Notes = "meter replaced"
		updated := sampleBill(3, model.BillStatusDraft)
		updated.Notes = "meter replaced"

		svc.bills.EXPECT().
			UpdateBill(gomock.Any(), int32(3), draft).
			Return(updated, nil)

		response, err := svc.UpdateBill(context.Background(), 3, &UpdateBillRequest{Draft: draft})

		assert.NoError(t, err)
		if assert.NotNil(t, response) {
			assert.Equal(t, "meter replaced", response.Bill.Notes)
		}
	})

	t.Run("sent_bill_is_rejected", func(t *testing.T) {
		svc := newTestService(t)
		svc.bills.EXPECT().
			UpdateBill(gomock.Any(), int32(3), gomock.Any()).
			Return(nil, &errs.Error{Code: errs.FailedPrecondition, Message: "only draft bills can be updated"})

		response, err := svc.UpdateBill(context.Background(), 3, &UpdateBillRequest{Draft: sampleDraft()})

		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
		assert.Nil(t, response)
	})

	t.Run("invalid_id", func(t *testing.T) {
		svc := newTestService(t)

		response, err := svc.UpdateBill(context.Background(), 0, &UpdateBillRequest{Draft: sampleDraft()})

		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
		assert.Nil(t, response)
	})
}

func TestUpdateBillRequest_Validation(t *testing.T) {
	assert.NoError(t, (&UpdateBillRequest{Draft: sampleDraft()}).Validate())

	d := sampleDraft()
	d.BillingMonth = ""
	assert.Error(t, (&UpdateBillRequest{Draft: d}).Validate())
}
