package remote

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/campus_market/internal/ports"
)

var _ ports.PaymentClient = (*PaymentClient)(nil)

// PaymentClient — клиент платёжного шлюза. Сумма передаётся строго
// целым числом минорных единиц; карточные данные через витрину
// не проходят.
type PaymentClient struct {
	c *Client
}

func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{c: NewClient(baseURL, timeout)}
}

func (pc *PaymentClient) Initiate(ctx context.Context, email string, amountMinorUnits int64, metadata map[string]string) (string, error) {
	body := map[string]any{
		"email":  email,
		"amount": amountMinorUnits,
	}
	if len(metadata) > 0 {
		body["metadata"] = metadata
	}

	var resp struct {
		AuthorizationURL string `json:"authorization_url"`
	}
	if err := pc.c.doJSON(ctx, http.MethodPost, "/transactions/initiate", nil, body, &resp); err != nil {
		return "", err
	}
	return resp.AuthorizationURL, nil
}
