package domain

// Bank — запись справочника банков платёжного провайдера.
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// AccountResolution — результат проверки расчётного счёта.
type AccountResolution struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}
