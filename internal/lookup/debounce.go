// Пакет lookup — координаторы исходящих поисковых вызовов: дебаунс
// пользовательского ввода и cooldown для квотируемых внешних сервисов.
package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports"
	"github.com/Gunvolt24/campus_market/pkg/metrics"
)

// DefaultQuietPeriod — пауза после последнего ввода перед отправкой запроса.
const DefaultQuietPeriod = 150 * time.Millisecond

// searchInput — накопленный ввод, ожидающий срабатывания таймера.
type searchInput struct {
	ctx      context.Context
	query    string
	page     int
	pageSize int
	filters  domain.SearchFilters
}

// SearchDebouncer — дебаунс поискового ввода с защитой от устаревших
// ответов. Каждый Submit сбрасывает единственный отложенный таймер;
// по срабатыванию отправляется только последний накопленный ввод.
//
// Инвариант: ответ применяется через onResult только если его
// порядковый номер — последний выданный. Медленный ответ на старый
// ввод никогда не затирает быстрый ответ на новый.
type SearchDebouncer struct {
	search   ports.SearchClient
	sched    ports.Scheduler
	log      ports.Logger
	quiet    time.Duration
	onResult func(domain.SearchResult, error)

	mu      sync.Mutex
	pending *searchInput
	timer   ports.TimerHandle
	gen     uint64
	seq     uint64
	closed  bool
}

// NewSearchDebouncer — DI-конструктор. quiet <= 0 заменяется значением
// по умолчанию. onResult вызывается из горутины таймера.
func NewSearchDebouncer(
	search ports.SearchClient,
	sched ports.Scheduler,
	log ports.Logger,
	quiet time.Duration,
	onResult func(domain.SearchResult, error),
) *SearchDebouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &SearchDebouncer{
		search:   search,
		sched:    sched,
		log:      log,
		quiet:    quiet,
		onResult: onResult,
	}
}

// Submit — зарегистрировать новый ввод. Предыдущий таймер отменяется:
// в сеть уходит только ввод, переживший паузу тишины.
func (d *SearchDebouncer) Submit(ctx context.Context, query string, page, pageSize int, filters domain.SearchFilters) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.pending = &searchInput{ctx: ctx, query: query, page: page, pageSize: pageSize, filters: filters}
	if d.timer != nil {
		d.timer.Stop()
	}
	// Поколение привязывает срабатывание к конкретному таймеру: callback
	// старого таймера, успевший стартовать до Stop, не заберёт ввод,
	// пауза которого ещё не истекла.
	d.gen++
	gen := d.gen
	d.timer = d.sched.AfterFunc(d.quiet, func() { d.fire(gen) })
}

// Close — остановить отложенный таймер и подавить поздние результаты.
// После Close ни один Submit не планирует вызовов.
func (d *SearchDebouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.pending = nil
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire — срабатывание таймера: атомарно забрать накопленный ввод,
// выдать порядковый номер и выполнить запрос. Сетевой вызов идёт вне
// мьютекса — Submit не блокируется на медленной сети.
func (d *SearchDebouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.closed {
		// таймер пережил собственную отмену: его ввод уже заменён
		d.mu.Unlock()
		return
	}
	in := d.pending
	d.pending = nil
	d.timer = nil
	if in == nil {
		d.mu.Unlock()
		return
	}
	d.seq++
	mySeq := d.seq
	d.mu.Unlock()

	metrics.LookupOps.WithLabelValues("search", "fired").Inc()
	res, err := d.search.Search(in.ctx, in.query, in.page, in.pageSize, in.filters)
	if err != nil {
		metrics.LookupOps.WithLabelValues("search", "failed").Inc()
		d.log.Warnf(in.ctx, "search lookup failed query=%q err=%v", in.query, err)
		// явный ошибочный результат: вызывающий отличает «ничего не
		// найдено» от «поиск не удался»
		res = domain.SearchResult{Query: in.query}
	}

	d.mu.Lock()
	stale := d.closed || mySeq != d.seq
	d.mu.Unlock()

	if stale {
		metrics.LookupOps.WithLabelValues("search", "superseded").Inc()
		return
	}
	d.onResult(res, err)
}
