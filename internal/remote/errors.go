package remote

import (
	"errors"
	"fmt"
)

// Типизированные отказы удалённых сервисов. Слой согласования различает:
//   - ErrUnauthorized — сессия истекла или гость: избранное деградирует
//     до пустого состояния без баннера ошибки;
//   - ErrConflict / ErrNotFound — «уже выполнено»: нормализуются
//     вызывающим до no-op, пользователю не показываются;
//   - прочее — пробрасывается наверх как ошибка с читаемым сообщением.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// StatusError — не-2xx ответ сервера, не сведённый к sentinel-ошибке.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote returned status %d", e.Code)
	}
	return fmt.Sprintf("remote returned status %d: %s", e.Code, e.Message)
}

// IsTransient — true для отказов, которые имеет смысл повторить:
// сетевые ошибки, таймауты и 5xx. Оптимистичное локальное состояние
// при таких ошибках не откатывается — его исправит следующий фетч.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return false
	}
	// всё остальное — сетевой/транспортный сбой
	return true
}
