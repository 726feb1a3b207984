package billclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"

	"rentbill.app/billing/model"
)

type createBillBody struct {
	PropertyID string          `json:"property_id"`
	Draft      model.BillDraft `json:"draft"`
}

type draftBody struct {
	Draft model.BillDraft `json:"draft"`
}

// ListContractBills returns every bill of the contract.
func (c *Client) ListContractBills(ctx context.Context, contractID string) ([]model.Bill, error) {
	body, err := c.do(ctx, "list contract bills", request{
		method:   http.MethodGet,
		segments: []string{"billing", "contract", contractID},
	})
	if err != nil {
		return nil, err
	}

	var out []model.Bill
	if err := decode(body, "bills", &out); err != nil {
		return nil, fmt.Errorf("list contract bills: %w", err)
	}
	if out == nil {
		out = []model.Bill{}
	}
	return out, nil
}

func (c *Client) GetBill(ctx context.Context, id int32) (*model.Bill, error) {
	body, err := c.do(ctx, "get bill", request{
		method:   http.MethodGet,
		segments: []string{"billing", billSegment(id)},
	})
	if err != nil {
		return nil, err
	}
	return decodeBill("get bill", body)
}

// CreateBill stores a new draft bill. Retries of the same draft must pass
// the same idempotencyKey; an empty key is replaced by a fresh one.
func (c *Client) CreateBill(ctx context.Context, idempotencyKey, propertyID string, draft model.BillDraft) (*model.Bill, error) {
	if idempotencyKey == "" {
		idempotencyKey = c.newKey()
	}

	body, err := c.do(ctx, "create bill", request{
		method:   http.MethodPost,
		segments: []string{"billing"},
		body:     createBillBody{PropertyID: propertyID, Draft: draft},
		headers:  map[string]string{idempotencyHeader: idempotencyKey},
	})
	if err != nil {
		return nil, err
	}
	return decodeBill("create bill", body)
}

func (c *Client) UpdateBill(ctx context.Context, id int32, draft model.BillDraft) (*model.Bill, error) {
	body, err := c.do(ctx, "update bill", request{
		method:   http.MethodPut,
		segments: []string{"billing", billSegment(id)},
		body:     draftBody{Draft: draft},
	})
	if err != nil {
		return nil, err
	}
	return decodeBill("update bill", body)
}

// SendBill moves a draft bill to pending. The server picks the due date.
func (c *Client) SendBill(ctx context.Context, id int32) (*model.Bill, error) {
	body, err := c.do(ctx, "send bill", request{
		method:   http.MethodPost,
		segments: []string{"billing", billSegment(id), "send"},
		body:     struct{}{},
	})
	if err != nil {
		return nil, err
	}
	return decodeBill("send bill", body)
}

func billSegment(id int32) string {
	return strconv.FormatInt(int64(id), 10)
}

func decodeBill(op string, body []byte) (*model.Bill, error) {
	if unwrap(body, "bill").Type == gjson.Null {
		return nil, fmt.Errorf("%s: response carries no bill", op)
	}

	var out model.Bill
	if err := decode(body, "bill", &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &out, nil
}
