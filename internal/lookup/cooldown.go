package lookup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/campus_market/internal/cache/memory"
	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports"
	"github.com/Gunvolt24/campus_market/pkg/metrics"
	"github.com/Gunvolt24/campus_market/pkg/validate"
)

// DefaultResolveCooldown — минимальный интервал между завершёнными
// вызовами проверки счёта: провайдер квотирует этот эндпоинт.
const DefaultResolveCooldown = 5 * time.Second

// bankDirectory — справочник банков вместе с валютой, для которой он
// запрошен. Смена валюты обесценивает кэшированный список.
type bankDirectory struct {
	currency string
	banks    []domain.Bank
}

// AccountResolver — координатор проверки банковских реквизитов.
// Соблюдает cooldown между завершёнными вызовами ResolveAccount:
// ранний вызов досыпает остаток, а не отклоняется — вызывающему не
// нужны собственные циклы повтора. Вызовы сериализованы.
type AccountResolver struct {
	client   ports.BankClient
	clock    ports.Clock
	log      ports.Logger
	cooldown time.Duration
	banks    *memory.Slot[bankDirectory]

	mu       sync.Mutex
	lastDone time.Time
}

// NewAccountResolver — DI-конструктор. cooldown <= 0 заменяется
// значением по умолчанию.
func NewAccountResolver(
	client ports.BankClient,
	banksTTL time.Duration,
	cooldown time.Duration,
	clock ports.Clock,
	log ports.Logger,
) *AccountResolver {
	if cooldown <= 0 {
		cooldown = DefaultResolveCooldown
	}
	return &AccountResolver{
		client:   client,
		clock:    clock,
		log:      log,
		cooldown: cooldown,
		banks:    memory.NewSlot[bankDirectory]("banks", banksTTL, clock),
	}
}

// ListBanks — справочник банков для валюты через TTL-кэш. Кэш хранит
// ответ для одной валюты; запрос другой валюты — промах с перезаписью.
func (r *AccountResolver) ListBanks(ctx context.Context, currency string) ([]domain.Bank, error) {
	if dir, ok := r.banks.Get(false); ok && dir.currency == currency {
		return dir.banks, nil
	}

	banks, err := r.client.ListBanks(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	r.banks.Set(bankDirectory{currency: currency, banks: banks})
	return banks, nil
}

// Resolve — имя владельца счёта. Порядок:
//  1. локальная валидация номера и кода — невалидный ввод не тратит квоту;
//  2. если с момента предыдущего завершённого вызова прошло меньше
//     cooldown — досыпать остаток (отменяемо контекстом);
//  3. сетевой вызов; момент его завершения открывает следующий cooldown.
func (r *AccountResolver) Resolve(ctx context.Context, accountNumber, bankCode string) (domain.AccountResolution, error) {
	if err := validate.AccountNumber(accountNumber); err != nil {
		return domain.AccountResolution{}, err
	}
	if err := validate.BankCode(bankCode); err != nil {
		return domain.AccountResolution{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.lastDone.IsZero() {
		if elapsed := r.clock.Now().Sub(r.lastDone); elapsed < r.cooldown {
			remaining := r.cooldown - elapsed
			metrics.LookupOps.WithLabelValues("account", "delayed").Inc()
			r.log.Infof(ctx, "account resolve throttled: sleeping %s", remaining)
			if err := r.clock.Sleep(ctx, remaining); err != nil {
				return domain.AccountResolution{}, fmt.Errorf("resolve account: %w", err)
			}
		}
	}

	metrics.LookupOps.WithLabelValues("account", "fired").Inc()
	res, err := r.client.ResolveAccount(ctx, accountNumber, bankCode)
	r.lastDone = r.clock.Now()
	if err != nil {
		metrics.LookupOps.WithLabelValues("account", "failed").Inc()
		return domain.AccountResolution{}, fmt.Errorf("resolve account: %w", err)
	}
	return res, nil
}
