package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports"
)

var _ ports.BankClient = (*BankClient)(nil)

// BankClient — клиент сервиса банковских реквизитов. ResolveAccount
// квотируется провайдером, поэтому вызывается только через координатор
// с cooldown (internal/lookup).
type BankClient struct {
	c *Client
}

func NewBankClient(baseURL string, timeout time.Duration) *BankClient {
	return &BankClient{c: NewClient(baseURL, timeout)}
}

func (bc *BankClient) ListBanks(ctx context.Context, currency string) ([]domain.Bank, error) {
	q := url.Values{}
	if currency != "" {
		q.Set("currency", currency)
	}
	var resp struct {
		Banks []domain.Bank `json:"banks"`
	}
	if err := bc.c.doJSON(ctx, http.MethodGet, "/banks", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Banks, nil
}

func (bc *BankClient) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (domain.AccountResolution, error) {
	q := url.Values{}
	q.Set("account_number", accountNumber)
	q.Set("bank_code", bankCode)

	var resp struct {
		AccountName string `json:"account_name"`
	}
	if err := bc.c.doJSON(ctx, http.MethodGet, "/banks/resolve", q, nil, &resp); err != nil {
		return domain.AccountResolution{}, err
	}
	return domain.AccountResolution{
		AccountNumber: accountNumber,
		AccountName:   resp.AccountName,
	}, nil
}
