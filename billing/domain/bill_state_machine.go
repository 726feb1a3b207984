package domain

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"rentbill.app/billing/model"
	"rentbill.app/billing/repository/bills"
	"rentbill.app/billing/repository/pgconv"
)

// StateMachine defines bill state transitions and transaction management
type StateMachine interface {
	// GetBillWithLock runs fn inside a transaction holding the bill row lock.
	// fn receives queries bound to that transaction.
	GetBillWithLock(ctx context.Context, billID int32, fn func(tx bills.Querier, current bills.Bill) error) error

	TransitionToPending(ctx context.Context, id int32, dueDate time.Time) (bills.Bill, error)
	TransitionToPaid(ctx context.Context, id int32) (bills.Bill, error)
	TransitionToOverdue(ctx context.Context, id int32) (bills.Bill, error)
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// allowedTransitions maps a target status to the statuses it can be reached from.
var allowedTransitions = map[model.BillStatus][]model.BillStatus{
	model.BillStatusPending: {model.BillStatusDraft},
	model.BillStatusPaid:    {model.BillStatusPending, model.BillStatusOverdue},
	model.BillStatusOverdue: {model.BillStatusPending},
}

// CanTransition reports whether a bill in status from may move to status to.
func CanTransition(from, to model.BillStatus) bool {
	for _, s := range allowedTransitions[to] {
		if s == from {
			return true
		}
	}
	return false
}

// BillStateMachine owns transaction boundaries for bill status changes.
type BillStateMachine struct {
	db        TxBeginner
	txQuerier func(pgx.Tx) bills.Querier
}

func NewBillStateMachine(db *pgxpool.Pool) *BillStateMachine {
	return newBillStateMachine(db, func(tx pgx.Tx) bills.Querier {
		return bills.New(tx)
	})
}

func newBillStateMachine(db TxBeginner, txQuerier func(pgx.Tx) bills.Querier) *BillStateMachine {
	return &BillStateMachine{
		db:        db,
		txQuerier: txQuerier,
	}
}

// GetBillWithLock performs fn with the bill row locked by SELECT ... FOR UPDATE
func (sm *BillStateMachine) GetBillWithLock(ctx context.Context, id int32, fn func(tx bills.Querier, current bills.Bill) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	q := sm.txQuerier(tx)

	currentBill, err := q.GetBillForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock bill"}
	}

	if err := fn(q, currentBill); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit bill update"}
	}

	return nil
}

// TransitionToPending sends a draft bill to the tenant and records the id of
// the payment workflow that will watch its due date.
func (sm *BillStateMachine) TransitionToPending(ctx context.Context, id int32, dueDate time.Time) (bills.Bill, error) {
	var result bills.Bill
	err := sm.GetBillWithLock(ctx, id, func(tx bills.Querier, current bills.Bill) error {
		if !CanTransition(model.BillStatus(current.Status), model.BillStatusPending) {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "bill must be in draft status to be sent",
			}
		}

		updated, err := tx.MarkBillSent(ctx, bills.MarkBillSentParams{
			ID:         id,
			DueDate:    pgconv.Timestamptz(dueDate),
			WorkflowID: pgconv.Text(model.BillWorkflowID(current.IdempotencyKey)),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to send bill"}
		}
		result = updated
		return nil
	})
	return result, err
}

// TransitionToPaid records the payment. Paying a paid bill is a no-op.
func (sm *BillStateMachine) TransitionToPaid(ctx context.Context, id int32) (bills.Bill, error) {
	var result bills.Bill
	err := sm.GetBillWithLock(ctx, id, func(tx bills.Querier, current bills.Bill) error {
		status := model.BillStatus(current.Status)
		if status == model.BillStatusPaid {
			result = current
			return nil
		}
		if !CanTransition(status, model.BillStatusPaid) {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "bill must be pending or overdue to be paid",
			}
		}

		updated, err := tx.MarkBillPaid(ctx, id)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to mark bill paid"}
		}
		result = updated
		return nil
	})
	return result, err
}

// TransitionToOverdue flags a pending bill whose due date passed. Paid and
// already overdue bills are left untouched.
func (sm *BillStateMachine) TransitionToOverdue(ctx context.Context, id int32) (bills.Bill, error) {
	var result bills.Bill
	err := sm.GetBillWithLock(ctx, id, func(tx bills.Querier, current bills.Bill) error {
		status := model.BillStatus(current.Status)
		if status == model.BillStatusPaid || status == model.BillStatusOverdue {
			rlog.Debug("skipping overdue transition", "bill_id", id, "status", status)
			result = current
			return nil
		}
		if !CanTransition(status, model.BillStatusOverdue) {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "bill must be pending to become overdue",
			}
		}

		updated, err := tx.UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
			ID:     id,
			Status: string(model.BillStatusOverdue),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to mark bill overdue"}
		}
		result = updated
		return nil
	})
	return result, err
}
