package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"rentbill.app/billing/mocks/repository/bill_repo"
	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/bills"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(ctx context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (f *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

func newTestStateMachine(t *testing.T) (*BillStateMachine, *fakeTx, *bill_repo.MockQuerier) {
	ctrl := gomock.NewController(t)
	q := bill_repo.NewMockQuerier(ctrl)
	tx := &fakeTx{}
	sm := newBillStateMachine(&fakeBeginner{tx: tx}, func(pgx.Tx) bills.Querier { return q })
	return sm, tx, q
}

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from, to model.BillStatus
		allowed  bool
	}{
		{model.BillStatusDraft, model.BillStatusPending, true},
		{model.BillStatusPending, model.BillStatusPaid, true},
		{model.BillStatusOverdue, model.BillStatusPaid, true},
		{model.BillStatusPending, model.BillStatusOverdue, true},
		{model.BillStatusDraft, model.BillStatusPaid, false},
		{model.BillStatusPaid, model.BillStatusPending, false},
		{model.BillStatusOverdue, model.BillStatusPending, false},
		{model.BillStatusPaid, model.BillStatusDraft, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestGetBillWithLock(t *testing.T) {
	t.Run("commits_on_success", func(t *testing.T) {
		sm, tx, q := newTestStateMachine(t)
		q.EXPECT().GetBillForUpdate(gomock.Any(), int32(1)).Return(bills.Bill{ID: 1, Status: "draft"}, nil)

		var seen bills.Bill
		err := sm.GetBillWithLock(context.Background(), 1, func(_ bills.Querier, current bills.Bill) error {
			seen = current
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, int32(1), seen.ID)
		assert.True(t, tx.committed)
	})

	t.Run("rolls_back_when_fn_fails", func(t *testing.T) {
		sm, tx, q := newTestStateMachine(t)
		q.EXPECT().GetBillForUpdate(gomock.Any(), int32(1)).Return(bills.Bill{ID: 1}, nil)

		err := sm.GetBillWithLock(context.Background(), 1, func(bills.Querier, bills.Bill) error {
			return errors.New("nope")
		})

		assert.EqualError(t, err, "nope")
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})

	t.Run("not_found", func(t *testing.T) {
		sm, _, q := newTestStateMachine(t)
		q.EXPECT().GetBillForUpdate(gomock.Any(), int32(9)).Return(bills.Bill{}, pgx.ErrNoRows)

		err := sm.GetBillWithLock(context.Background(), 9, func(bills.Querier, bills.Bill) error {
			t.Fatal("fn must not run")
			return nil
		})

		assert.Equal(t, errs.NotFound, errs.Code(err))
	})

	t.Run("begin_fails", func(t *testing.T) {
		sm := newBillStateMachine(&fakeBeginner{err: errors.New("pool closed")}, nil)

		err := sm.GetBillWithLock(context.Background(), 1, func(bills.Querier, bills.Bill) error { return nil })

		assert.Equal(t, errs.Internal, errs.Code(err))
	})

	t.Run("commit_fails", func(t *testing.T) {
		sm, tx, q := newTestStateMachine(t)
		tx.commitErr = errors.New("conn lost")
		q.EXPECT().GetBillForUpdate(gomock.Any(), int32(1)).Return(bills.Bill{ID: 1}, nil)

		err := sm.GetBillWithLock(context.Background(), 1, func(bills.Querier, bills.Bill) error { return nil })

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to commit bill update")
	})
}

func TestTransitionToPending(t *testing.T) {
	due := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)

	t.Run("draft_is_sent", func(t *testing.T) {
		sm, tx, q := newTestStateMachine(t)
		q.EXPECT().GetBillForUpdate(gomock.Any(), int32(1)).
			Return(bills.Bill{ID: 1, Status: "draft", IdempotencyKey: "abc"}, nil)
		q.EXPECT().MarkBillSent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg bills.MarkBillSentParams) (bills.Bill, error) {
				assert.Equal(t, "bill-abc", arg.WorkflowID.String)
				assert.True(t, arg.DueDate.Time.Equal(due))
				return bills.Bill{ID: 1, Status: "pending", WorkflowID: arg.WorkflowID, DueDate: arg.DueDate}, nil
			})

		result, err := sm.TransitionToPending(context.Background(), 1, due)

		assert.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
		assert.True(t, tx.committed)
	})

	t.Run("pending_cannot_be_resent", func(t *testing.T) {
		sm, tx, q := newTestStateMachine(t)
		q.EXPECT().GetBillForUpdate(gomock.Any(), int32(1)).Return(bills.Bill{ID: 1, Status: "pending"}, nil)

		_, err := sm.TransitionToPending(context.Background(), 1, due)

		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
		assert.False(t, tx.committed)
	})
}

func TestTransitionToPaid(t *testing.T) {
	testCases := []struct {
		name         string
		status       string
		expectUpdate bool
		expectedCode errs.ErrCode
	}{
		{name: "pending_is_paid", status: "pending", expectUpdate: true, expectedCode: errs.OK},
		{name: "overdue_is_paid", status: "overdue", expectUpdate: true, expectedCode: errs.OK},
		{name: "paid_is_noop", status: "paid", expectedCode: errs.OK},
		{name: "draft_cannot_be_paid", status: "draft", expectedCode: errs.FailedPrecondition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sm, _, q := newTestStateMachine(t)
			q.EXPECT().GetBillForUpdate(gomock.Any(), int32(5)).Return(bills.Bill{ID: 5, Status: tc.status}, nil)
			if tc.expectUpdate {
				q.EXPECT().MarkBillPaid(gomock.Any(), int32(5)).Return(bills.Bill{ID: 5, Status: "paid"}, nil)
			}

			result, err := sm.TransitionToPaid(context.Background(), 5)

			assert.Equal(t, tc.expectedCode, errs.Code(err))
			if err == nil {
				assert.Equal(t, "paid", result.Status)
			}
		})
	}
}

func TestTransitionToOverdue(t *testing.T) {
	testCases := []struct {
		name         string
		status       string
		expectUpdate bool
		expectedCode errs.ErrCode
		finalStatus  string
	}{
		{name: "pending_becomes_overdue", status: "pending", expectUpdate: true, expectedCode: errs.OK, finalStatus: "overdue"},
		{name: "paid_is_untouched", status: "paid", expectedCode: errs.OK, finalStatus: "paid"},
		{name: "overdue_is_untouched", status: "overdue", expectedCode: errs.OK, finalStatus: "overdue"},
		{name: "draft_cannot_be_overdue", status: "draft", expectedCode: errs.FailedPrecondition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sm, _, q := newTestStateMachine(t)
			q.EXPECT().GetBillForUpdate(gomock.Any(), int32(6)).Return(bills.Bill{ID: 6, Status: tc.status}, nil)
			if tc.expectUpdate {
				q.EXPECT().
					UpdateBillStatus(gomock.Any(), bills.UpdateBillStatusParams{ID: 6, Status: "overdue"}).
					Return(bills.Bill{ID: 6, Status: "overdue"}, nil)
			}

			result, err := sm.TransitionToOverdue(context.Background(), 6)

			assert.Equal(t, tc.expectedCode, errs.Code(err))
			if err == nil {
				assert.Equal(t, tc.finalStatus, result.Status)
			}
		})
	}
}
