package billclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"rentbill.app/billing/model"
)

// GetActiveUtilityConfig returns the active price config for the contract,
// or nil when none exists.
func (c *Client) GetActiveUtilityConfig(ctx context.Context, contractID, propertyID string) (*model.UtilityPriceConfig, error) {
	var query url.Values
	if propertyID != "" {
		query = url.Values{"property_id": {propertyID}}
	}

	body, err := c.do(ctx, "get utility config", request{
		method:   http.MethodGet,
		segments: []string{"billing", "utility-config", "contract", contractID},
		query:    query,
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	payload := unwrap(body, "config")
	if !payload.Exists() || payload.Type == gjson.Null {
		return nil, nil
	}

	var out model.UtilityPriceConfig
	if err := decode(body, "config", &out); err != nil {
		return nil, fmt.Errorf("get utility config: %w", err)
	}
	return &out, nil
}
