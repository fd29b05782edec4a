package ports

import "context"

// PaymentClient — контракт платёжного шлюза. Карточные данные через
// витрину не проходят: шлюз возвращает URL авторизации, на который
// браузер перенаправляется.
type PaymentClient interface {
	// Initiate — инициировать платёж. Сумма строго в минорных единицах.
	Initiate(ctx context.Context, email string, amountMinorUnits int64, metadata map[string]string) (authorizationURL string, err error)
}
