// Пакет validate — проверки пользовательского ввода ДО сетевого вызова.
// Невалидный ввод отклоняется локально и никогда не уходит на бэкенд.
package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// Sentinel-ошибки валидации; оборачиваются с причиной через %w.
var (
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidBankCode      = errors.New("invalid bank code")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrEmptyProductRef      = errors.New("empty product ref")
	ErrInvalidEmail         = errors.New("invalid email")
)

// AccountNumber — номер счёта: ровно 10 цифр.
func AccountNumber(s string) error {
	s = strings.TrimSpace(s)
	if len(s) != 10 {
		return fmt.Errorf("%w: want exactly 10 digits, got %d characters", ErrInvalidAccountNumber, len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: non-digit character %q", ErrInvalidAccountNumber, r)
		}
	}
	return nil
}

// BankCode — код банка из справочника: непустая строка цифр.
func BankCode(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("%w: empty", ErrInvalidBankCode)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: non-digit character %q", ErrInvalidBankCode, r)
		}
	}
	return nil
}

// Quantity — количество в позиции корзины: строго положительное.
func Quantity(q int) error {
	if q < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, q)
	}
	return nil
}

// ProductRef — непрозрачный идентификатор товара: непустой.
func ProductRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return ErrEmptyProductRef
	}
	return nil
}

// Email — адрес покупателя для платёжного шлюза.
func Email(s string) error {
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, s)
	}
	return nil
}
