package billing

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"rentbill.app/billing/statement"
)

// BillStatement streams the PDF statement of a bill.
//
//encore:api public raw path=/billing/:id/statement method=GET
func (s *Service) BillStatement(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(encore.CurrentRequest().PathParams.Get("id"))
	if err != nil {
		id = 0
	}
	billID, err := toBillID(id)
	if err != nil {
		errs.HTTPError(w, err)
		return
	}

	s.writeStatement(req.Context(), w, billID)
}

func (s *Service) writeStatement(ctx context.Context, w http.ResponseWriter, id int32) {
	bill, err := s.bills.GetBill(ctx, id)
	if err != nil {
		rlog.Error("failed to load bill for statement", "error", err, "id", id)
		errs.HTTPError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := statement.Render(&buf, bill, time.Now()); err != nil {
		rlog.Error("failed to render statement", "error", err, "id", id)
		errs.HTTPError(w, &errs.Error{Code: errs.Internal, Message: "failed to render statement"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=bill-%d-%s.pdf", bill.ID, bill.BillingMonth))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := w.Write(buf.Bytes()); err != nil {
		rlog.Warn("failed to write statement", "error", err, "id", id)
	}
}
