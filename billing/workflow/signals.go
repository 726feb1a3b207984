package workflow

const (
	// Signal names
	BillPaidSignalName = "bill-paid"
)

// BillPaidSignal tells the payment workflow the bill was settled
type BillPaidSignal struct {
	BillID int32 `json:"bill_id"`
}
