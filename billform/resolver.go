package billform

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"rentbill.app/billing/model"
)

// InheritanceResolver computes the values a new bill for a contract starts
// from: the prior bill's closing meter readings, the following billing
// month and the active utility prices.
type InheritanceResolver struct {
	gw  Gateway
	log logrus.FieldLogger
	now func() time.Time
}

type ResolverOption func(*InheritanceResolver)

func WithResolverLogger(l logrus.FieldLogger) ResolverOption {
	return func(r *InheritanceResolver) { r.log = l }
}

// WithClock sets the clock used for the current month default.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *InheritanceResolver) { r.now = now }
}

func NewInheritanceResolver(gw Gateway, opts ...ResolverOption) *InheritanceResolver {
	r := &InheritanceResolver{
		gw:  gw,
		log: discardLogger(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve loads the utility config and the bill history of contractID
// concurrently and builds the inherited patch. Load failures are logged and
// resolve to defaults. The only errors are a missing contract id and a
// cancelled ctx.
func (r *InheritanceResolver) Resolve(ctx context.Context, contractID string, contracts []model.Contract) (Patch, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return Patch{}, &ValidationError{Reason: MissingContract}
	}

	log := r.log.WithField("contract_id", contractID)

	contract, known := findContract(contracts, contractID)
	if !known {
		log.Debug("contract not in known contracts, resolving without property")
	}

	var (
		cfg   *model.UtilityPriceConfig
		bills []model.Bill
		g     errgroup.Group
	)
	g.Go(func() error {
		c, err := r.gw.GetActiveUtilityConfig(ctx, contractID, contract.PropertyID)
		if err != nil {
			log.WithError(err).Warn("load utility config failed, using defaults")
			return nil
		}
		cfg = c
		return nil
	})
	g.Go(func() error {
		b, err := r.gw.ListContractBills(ctx, contractID)
		if err != nil {
			log.WithError(err).Warn("load prior bills failed, using defaults")
			return nil
		}
		bills = b
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Patch{}, err
	}

	patch := Patch{
		ContractID: contractID,
		PropertyID: contract.PropertyID,
	}
	if known {
		patch.MonthlyRent = ptr(contract.MonthlyRent)
		patch.RentalDeposit = ptr(contract.RentalDeposit)
	}

	patch.BillingMonth = model.CurrentMonth(r.now())
	if prior := latestBill(bills); prior != nil {
		patch.PriorBillID = prior.ID
		patch.ElectricityOld = prior.ElectricityNew
		patch.WaterOld = prior.WaterNew

		next, err := model.NextMonth(prior.BillingMonth)
		if err != nil {
			log.WithError(err).WithField("bill_id", prior.ID).Warn("prior bill has invalid billing month")
		} else {
			patch.BillingMonth = next
		}
	}

	if cfg != nil {
		patch.ElectricityUnitPrice = ptr(cfg.ElectricityUnitPrice)
		patch.WaterUnitPrice = ptr(cfg.WaterUnitPrice)
		patch.InternetPrice = ptr(cfg.InternetPrice)
		patch.ParkingPrice = ptr(cfg.ParkingPrice)
		patch.CleaningPrice = ptr(cfg.CleaningPrice)
		patch.MaintenancePrice = ptr(cfg.MaintenancePrice)
	}

	log.WithFields(logrus.Fields{
		"prior_bill_id": patch.PriorBillID,
		"billing_month": patch.BillingMonth,
		"has_config":    cfg != nil,
	}).Debug("inheritance resolved")
	return patch, nil
}

// ResolveInto selects contractID on form, resolves it and applies the
// result. ErrStaleSelection is returned when another contract was selected
// on form in the meantime; the resolved values are then dropped.
func (r *InheritanceResolver) ResolveInto(ctx context.Context, form *FormState, contractID string, contracts []model.Contract) error {
	generation := form.SelectContract(contractID)

	patch, err := r.Resolve(ctx, contractID, contracts)
	if err != nil {
		return err
	}

	if !form.applyIfCurrent(generation, patch) {
		r.log.WithField("contract_id", contractID).Debug("discarding stale inheritance result")
		return ErrStaleSelection
	}
	return nil
}

func findContract(contracts []model.Contract, id string) (model.Contract, bool) {
	for _, c := range contracts {
		if c.ID == id {
			return c, true
		}
	}
	return model.Contract{}, false
}

// latestBill returns the bill with the greatest billing month. "YYYY-MM"
// values order lexicographically by time.
func latestBill(bills []model.Bill) *model.Bill {
	var latest *model.Bill
	for i := range bills {
		b := &bills[i]
		if !model.ValidBillingMonth(b.BillingMonth) {
			continue
		}
		if latest == nil || strings.TrimSpace(b.BillingMonth) > strings.TrimSpace(latest.BillingMonth) {
			latest = b
		}
	}
	return latest
}
