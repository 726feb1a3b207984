// Package statement renders a bill as a printable PDF statement.
package statement

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"rentbill.app/billing/model"
)

var ErrNilBill = errors.New("statement: nil bill")

type line struct {
	label  string
	detail string
	amount decimal.Decimal
}

// Render writes the PDF statement of b to w. generatedAt is printed in the
// footer and used as the document creation date.
func Render(w io.Writer, b *model.Bill, generatedAt time.Time) error {
	if b == nil {
		return ErrNilBill
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	pdf.SetTitle(fmt.Sprintf("Bill %d - %s", b.ID, b.BillingMonth), false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Rental bill "+b.BillingMonth, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	header := [][2]string{
		{"Bill", fmt.Sprintf("#%d", b.ID)},
		{"Contract", b.ContractID},
		{"Property", b.PropertyID},
		{"Status", string(b.Status)},
	}
	if b.DueDate != nil {
		header = append(header, [2]string{"Due date", b.DueDate.Format("2006-01-02")})
	}
	if b.PaidAt != nil {
		header = append(header, [2]string{"Paid at", b.PaidAt.Format("2006-01-02")})
	}
	for _, h := range header {
		pdf.CellFormat(30, 6, h[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(h[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(80, 8, "Detail", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, l := range lines(b) {
		pdf.CellFormat(60, 7, tr(l.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(80, 7, tr(l.detail), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, l.amount.StringFixedBank(0), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(140, 9, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 9, b.TotalAmount.StringFixedBank(0), "T", 1, "R", false, 0, "")

	if b.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, tr(b.Notes), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, "Generated "+generatedAt.Format(time.RFC3339), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// lines lists the non zero charges of b in statement order.
func lines(b *model.Bill) []line {
	all := []line{
		{label: "Monthly rent", amount: b.MonthlyRent},
		{label: "Rental deposit", amount: b.RentalDeposit},
		{
			label:  "Electricity",
			detail: meterDetail(b.ElectricityOld, b.ElectricityNew, b.ElectricityUnitPrice),
			amount: b.ElectricityAmount,
		},
		{
			label:  "Water",
			detail: meterDetail(b.WaterOld, b.WaterNew, b.WaterUnitPrice),
			amount: b.WaterAmount,
		},
		{label: "Internet", amount: b.InternetPrice},
		{label: "Parking", amount: b.ParkingPrice},
		{label: "Cleaning", amount: b.CleaningPrice},
		{label: "Maintenance", amount: b.MaintenancePrice},
		{label: "Other", detail: b.OtherDescription, amount: b.OtherPrice},
	}

	out := make([]line, 0, len(all))
	for _, l := range all {
		if !l.amount.IsZero() {
			out = append(out, l)
		}
	}
	return out
}

func meterDetail(prev, curr, unitPrice decimal.Decimal) string {
	return fmt.Sprintf("%s -> %s x %s", prev.String(), curr.String(), unitPrice.String())
}
