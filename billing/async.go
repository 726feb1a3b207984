package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const asyncTimeout = 10 * time.Second

// runAsync runs follow-up work for a bill after the response is sent.
// Tests replace it with a synchronous runner.
var runAsync = safeAsync

func safeAsync(op string, billID int32, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			rlog.Error("bill follow-up failed", "op", op, "bill_id", billID, "error", err)
			return
		}
		rlog.Debug("bill follow-up done", "op", op, "bill_id", billID)
	}()
}
