package session

import (
	"sync"

	"github.com/Gunvolt24/campus_market/internal/domain"
)

// SuggestResult — завершённый результат подсказок: ответ поиска либо
// явная ошибка (вызывающий отличает «нет совпадений» от «поиск упал»).
type SuggestResult struct {
	Result domain.SearchResult
	Err    error
}

// SuggestBox — последний завершённый результат подсказок поиска одной
// сессии. Дебаунсер кладёт сюда ответы через onResult; обработчик
// отдаёт текущее содержимое, не дожидаясь паузы тишины.
type SuggestBox struct {
	mu     sync.Mutex
	last   SuggestResult
	filled bool
}

// Put — принять завершённый результат. Вызывается из горутины таймера.
func (b *SuggestBox) Put(res domain.SearchResult, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = SuggestResult{Result: res, Err: err}
	b.filled = true
}

// Latest — последний результат; false, если ещё ни один запрос
// не завершился.
func (b *SuggestBox) Latest() (SuggestResult, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last, b.filled
}
