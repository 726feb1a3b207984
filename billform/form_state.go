// Package billform holds the in-memory state of a bill being drafted and
// the resolver that seeds it from a contract's billing history.
package billform

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"rentbill.app/billing/model"
)

// FormState owns one bill draft. It is safe for concurrent use; the
// resolver may apply inherited values from another goroutine.
type FormState struct {
	gw        Gateway
	log       logrus.FieldLogger
	onSuccess func(*model.Bill)
	newKey    func() string

	mu         sync.Mutex
	propertyID string
	// propertyInherited is set when propertyID came from a contract or a
	// stored bill rather than from SelectProperty.
	propertyInherited bool
	// contractProperty is the property the selected contract belongs to,
	// when known.
	contractProperty string
	draft            model.BillDraft
	generation       uint64
	billID           int32
	status           model.BillStatus
	// idempotencyKey keys create requests of the current draft. It is
	// reset whenever the draft changes.
	idempotencyKey string
}

type FormOption func(*FormState)

func WithFormLogger(l logrus.FieldLogger) FormOption {
	return func(f *FormState) { f.log = l }
}

// OnSuccess registers fn to be called with the stored bill after each
// successful Submit.
func OnSuccess(fn func(*model.Bill)) FormOption {
	return func(f *FormState) { f.onSuccess = fn }
}

func NewFormState(gw Gateway, opts ...FormOption) *FormState {
	f := &FormState{
		gw:     gw,
		log:    discardLogger(),
		newKey: uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *FormState) SelectProperty(propertyID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.propertyID = strings.TrimSpace(propertyID)
	f.propertyInherited = false
}

// SelectContract starts a new draft for contractID and returns the
// selection generation. Values resolved and bills stored for an older
// generation are not applied to the new draft.
func (f *FormState) SelectContract(contractID string) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.draft = model.BillDraft{ContractID: strings.TrimSpace(contractID)}
	f.billID = 0
	f.status = ""
	f.idempotencyKey = ""
	f.contractProperty = ""
	if f.propertyInherited {
		f.propertyID = ""
		f.propertyInherited = false
	}
	return f.generation
}

// EditBill loads an existing bill so that Submit updates it in place.
func (f *FormState) EditBill(b model.Bill) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.propertyID = b.PropertyID
	f.propertyInherited = true
	f.contractProperty = b.PropertyID
	f.draft = b.BillDraft
	f.billID = b.ID
	f.status = b.Status
	f.idempotencyKey = ""
}

// SetField updates one draft field by its wire name. Numeric fields accept
// any decimal; blank or unparsable input sets them to zero.
func (f *FormState) SetField(name, value string) error {
	set, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	set(&f.draft, value)
	f.idempotencyKey = ""
	return nil
}

// Apply merges inherited values into the draft.
func (f *FormState) Apply(p Patch) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applyLocked(p)
}

// applyIfCurrent applies p only when generation is still the latest
// contract selection.
func (f *FormState) applyIfCurrent(generation uint64, p Patch) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if generation != f.generation {
		return false
	}
	f.applyLocked(p)
	return true
}

func (f *FormState) applyLocked(p Patch) {
	d := &f.draft
	f.idempotencyKey = ""

	if p.ContractID != "" {
		d.ContractID = p.ContractID
	}
	if p.PropertyID != "" {
		f.contractProperty = p.PropertyID
		if f.propertyID == "" || f.propertyInherited {
			f.propertyID = p.PropertyID
			f.propertyInherited = true
		}
	}
	if p.BillingMonth != "" {
		d.BillingMonth = p.BillingMonth
	}
	d.ElectricityOld = p.ElectricityOld
	d.WaterOld = p.WaterOld

	for _, u := range []struct {
		src *decimal.Decimal
		dst *decimal.Decimal
	}{
		{p.MonthlyRent, &d.MonthlyRent},
		{p.RentalDeposit, &d.RentalDeposit},
		{p.ElectricityUnitPrice, &d.ElectricityUnitPrice},
		{p.WaterUnitPrice, &d.WaterUnitPrice},
		{p.InternetPrice, &d.InternetPrice},
		{p.ParkingPrice, &d.ParkingPrice},
		{p.CleaningPrice, &d.CleaningPrice},
		{p.MaintenancePrice, &d.MaintenancePrice},
	} {
		if u.src != nil {
			*u.dst = *u.src
		}
	}
}

// Draft returns a copy of the current draft.
func (f *FormState) Draft() model.BillDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *FormState) PropertyID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.propertyID
}

// BillID is the id of the stored bill, or 0 before the first Submit.
func (f *FormState) BillID() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.billID
}

func (f *FormState) Status() model.BillStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *FormState) ComputeTotal() model.Charges {
	return model.ComputeCharges(f.Draft())
}

// submission is the part of the form a Submit call works on.
type submission struct {
	generation     uint64
	draft          model.BillDraft
	propertyID     string
	billID         int32
	idempotencyKey string
}

func (f *FormState) prepareSubmit() (submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.draft.ContractID == "":
		return submission{}, &ValidationError{Reason: MissingContract}
	case f.propertyID == "":
		return submission{}, &ValidationError{Reason: MissingProperty}
	case f.contractProperty != "" && f.contractProperty != f.propertyID:
		return submission{}, &ValidationError{Reason: PropertyMismatch}
	case f.billID != 0 && !f.status.Editable():
		return submission{}, ErrBillNotEditable
	}

	if f.billID == 0 && f.idempotencyKey == "" {
		f.idempotencyKey = f.newKey()
	}
	return submission{
		generation:     f.generation,
		draft:          f.draft,
		propertyID:     f.propertyID,
		billID:         f.billID,
		idempotencyKey: f.idempotencyKey,
	}, nil
}

// Submit creates the bill, or updates it when the form already holds a
// stored draft. The draft is kept on failure so the call can be retried;
// a retry of an unchanged draft reuses the create request's idempotency
// key.
//
// When another contract was selected while the request was in flight, the
// stored bill is returned together with ErrStaleSelection and the new
// draft is left untouched.
func (f *FormState) Submit(ctx context.Context) (*model.Bill, error) {
	sub, err := f.prepareSubmit()
	if err != nil {
		return nil, err
	}

	draft := sub.draft
	log := f.log.WithFields(logrus.Fields{"contract_id": draft.ContractID, "billing_month": draft.BillingMonth})
	if meters := draft.NegativeDeltas(); len(meters) > 0 {
		log.WithField("meters", meters).Warn("submitting bill with negative meter delta")
	}

	var bill *model.Bill
	if sub.billID == 0 {
		bill, err = f.gw.CreateBill(ctx, sub.idempotencyKey, sub.propertyID, draft)
	} else {
		bill, err = f.gw.UpdateBill(ctx, sub.billID, draft)
	}
	if err != nil {
		log.WithError(err).Warn("submit bill failed")
		return nil, err
	}

	f.mu.Lock()
	current := f.generation == sub.generation
	if current {
		f.billID = bill.ID
		f.status = bill.Status
		f.idempotencyKey = ""
	}
	f.mu.Unlock()

	if !current {
		log.WithField("bill_id", bill.ID).Info("bill stored after the form moved to another selection")
		return bill, ErrStaleSelection
	}

	log.WithField("bill_id", bill.ID).Info("bill submitted")
	if f.onSuccess != nil {
		f.onSuccess(bill)
	}
	return bill, nil
}

// Send moves the submitted draft to pending.
func (f *FormState) Send(ctx context.Context) (*model.Bill, error) {
	f.mu.Lock()
	billID, generation := f.billID, f.generation
	f.mu.Unlock()

	if billID == 0 {
		return nil, ErrNotSubmitted
	}

	bill, err := f.gw.SendBill(ctx, billID)
	if err != nil {
		f.log.WithError(err).WithField("bill_id", billID).Warn("send bill failed")
		return nil, err
	}

	f.mu.Lock()
	if f.generation == generation {
		f.status = bill.Status
	}
	f.mu.Unlock()
	return bill, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
