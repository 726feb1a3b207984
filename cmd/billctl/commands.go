package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"rentbill.app/billform"
	"rentbill.app/billing/model"
)

type runner struct {
	log     logrus.FieldLogger
	out     io.Writer
	gateway func() (billform.Gateway, error)
}

func (r *runner) listBills(c *cli.Context) error {
	gw, err := r.gateway()
	if err != nil {
		return err
	}

	bills, err := gw.ListContractBills(c.Context, c.String("contract"))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMONTH\tSTATUS\tTOTAL\tDUE")
	for _, b := range bills {
		due := "-"
		if b.DueDate != nil {
			due = b.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.BillingMonth, b.Status, b.TotalAmount.String(), due)
	}
	return tw.Flush()
}

func (r *runner) draft(c *cli.Context) error {
	gw, err := r.gateway()
	if err != nil {
		return err
	}

	contractID := c.String("contract")
	form := billform.NewFormState(gw, billform.WithFormLogger(r.log), billform.OnSuccess(r.printStored))
	form.SelectProperty(c.String("property"))

	var contracts []model.Contract
	if c.IsSet("property") {
		contract, err := contractFromFlags(contractID, c)
		if err != nil {
			return err
		}
		contracts = append(contracts, contract)
	}

	resolver := billform.NewInheritanceResolver(gw, billform.WithResolverLogger(r.log))
	if err := resolver.ResolveInto(c.Context, form, contractID, contracts); err != nil {
		return err
	}

	if err := applyAssignments(form, c.StringSlice("set")); err != nil {
		return err
	}
	r.printDraft(form)

	if !c.Bool("submit") && !c.Bool("send") {
		return nil
	}
	return r.submit(c, form)
}

func (r *runner) edit(c *cli.Context) error {
	billID, err := billIDFlag(c)
	if err != nil {
		return err
	}
	gw, err := r.gateway()
	if err != nil {
		return err
	}

	bill, err := gw.GetBill(c.Context, billID)
	if err != nil {
		return err
	}

	form := billform.NewFormState(gw, billform.WithFormLogger(r.log), billform.OnSuccess(r.printStored))
	form.EditBill(*bill)
	if err := applyAssignments(form, c.StringSlice("set")); err != nil {
		return err
	}
	r.printDraft(form)
	return r.submit(c, form)
}

func (r *runner) submit(c *cli.Context, form *billform.FormState) error {
	if _, err := form.Submit(c.Context); err != nil {
		return err
	}
	if !c.Bool("send") {
		return nil
	}

	bill, err := form.Send(c.Context)
	if err != nil {
		return err
	}
	r.printSent(bill)
	return nil
}

func (r *runner) send(c *cli.Context) error {
	billID, err := billIDFlag(c)
	if err != nil {
		return err
	}
	gw, err := r.gateway()
	if err != nil {
		return err
	}

	bill, err := gw.SendBill(c.Context, billID)
	if err != nil {
		return err
	}
	r.printSent(bill)
	return nil
}

func (r *runner) printDraft(form *billform.FormState) {
	d := form.Draft()
	charges := form.ComputeTotal()

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "contract\t%s\n", d.ContractID)
	fmt.Fprintf(tw, "property\t%s\n", form.PropertyID())
	fmt.Fprintf(tw, "billing month\t%s\n", d.BillingMonth)
	fmt.Fprintf(tw, "monthly rent\t%s\n", d.MonthlyRent)
	fmt.Fprintf(tw, "rental deposit\t%s\n", d.RentalDeposit)
	fmt.Fprintf(tw, "electricity\t%s -> %s x %s = %s\n", d.ElectricityOld, d.ElectricityNew, d.ElectricityUnitPrice, charges.ElectricityAmount)
	fmt.Fprintf(tw, "water\t%s -> %s x %s = %s\n", d.WaterOld, d.WaterNew, d.WaterUnitPrice, charges.WaterAmount)
	fmt.Fprintf(tw, "internet\t%s\n", d.InternetPrice)
	fmt.Fprintf(tw, "parking\t%s\n", d.ParkingPrice)
	fmt.Fprintf(tw, "cleaning\t%s\n", d.CleaningPrice)
	fmt.Fprintf(tw, "maintenance\t%s\n", d.MaintenancePrice)
	if d.OtherDescription != "" || !d.OtherPrice.IsZero() {
		fmt.Fprintf(tw, "other\t%s %s\n", d.OtherPrice, d.OtherDescription)
	}
	fmt.Fprintf(tw, "total\t%s\n", charges.Total)
	_ = tw.Flush()

	if meters := d.NegativeDeltas(); len(meters) > 0 {
		fmt.Fprintf(r.out, "warning: new reading below old reading for %s\n", strings.Join(meters, ", "))
	}
}

func (r *runner) printStored(b *model.Bill) {
	fmt.Fprintf(r.out, "saved bill %d (%s), total %s\n", b.ID, b.Status, b.TotalAmount)
}

func (r *runner) printSent(b *model.Bill) {
	due := ""
	if b.DueDate != nil {
		due = ", due " + b.DueDate.Format("2006-01-02")
	}
	fmt.Fprintf(r.out, "sent bill %d (%s)%s\n", b.ID, b.Status, due)
}

func contractFromFlags(contractID string, c *cli.Context) (model.Contract, error) {
	contract := model.Contract{ID: contractID, PropertyID: c.String("property")}

	for name, dst := range map[string]*decimal.Decimal{
		"rent":    &contract.MonthlyRent,
		"deposit": &contract.RentalDeposit,
	} {
		if !c.IsSet(name) {
			continue
		}
		v, err := decimal.NewFromString(strings.TrimSpace(c.String(name)))
		if err != nil {
			return model.Contract{}, fmt.Errorf("invalid --%s %q: %w", name, c.String(name), err)
		}
		*dst = v
	}
	return contract, nil
}

var (
	errAssignment    = errors.New("expected field=value")
	errInvalidBillID = errors.New("invalid bill id")
)

// billIDFlag reads --bill, which must fit a positive int32.
func billIDFlag(c *cli.Context) (int32, error) {
	id := c.Int64("bill")
	if id <= 0 || id > math.MaxInt32 {
		return 0, fmt.Errorf("%w %d", errInvalidBillID, id)
	}
	return int32(id), nil
}

// applyAssignments sets each "field=value" pair on form in order.
func applyAssignments(form *billform.FormState, assignments []string) error {
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("%w, got %q", errAssignment, a)
		}
		if err := form.SetField(strings.TrimSpace(name), value); err != nil {
			return err
		}
	}
	return nil
}
