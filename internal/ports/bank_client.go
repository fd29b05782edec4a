package ports

import (
	"context"

	"github.com/Gunvolt24/campus_market/internal/domain"
)

// BankClient — контракт сервиса проверки банковских реквизитов.
// ResolveAccount квотируется провайдером: вызовы идут только через
// координатор с cooldown, напрямую из обработчиков не вызывается.
type BankClient interface {
	// ListBanks — справочник банков для валюты.
	ListBanks(ctx context.Context, currency string) ([]domain.Bank, error)

	// ResolveAccount — имя владельца счёта по номеру и коду банка.
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (domain.AccountResolution, error)
}
