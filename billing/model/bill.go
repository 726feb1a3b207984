package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bill struct {
	ID         int32  `json:"id"`
	PropertyID string `json:"property_id"`

	BillDraft

	ElectricityAmount decimal.Decimal `json:"electricity_amount"`
	WaterAmount       decimal.Decimal `json:"water_amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`

	Status         BillStatus `json:"status"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	IdempotencyKey string     `json:"idempotency_key"`
	WorkflowID     *string    `json:"workflow_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type BillStatus string

// Only draft creation and draft -> pending are client initiated; paid and
// overdue are decided by the billing service.
const (
	BillStatusDraft   BillStatus = "draft"
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
)

// Editable reports whether the bill can still be updated in place.
func (s BillStatus) Editable() bool {
	return s == BillStatusDraft
}

// Settled reports whether the bill reached a terminal state.
func (s BillStatus) Settled() bool {
	return s == BillStatusPaid
}

// BillWorkflowID is the id of the payment workflow started when the bill
// with the given idempotency key is sent.
func BillWorkflowID(idempotencyKey string) string {
	return "bill-" + idempotencyKey
}
