package options

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"ocorrenciaapp/pkg/logger"
	"ocorrenciaapp/pkg/logger/interfaces"

	"github.com/google/uuid"
)

// State состояние загрузки документа
type State int

const (
	StateUnloaded State = iota // документ не загружен, следующий вызов начнет загрузку
	StateLoading               // запрос в полете
	StateLoaded                // документ загружен, больше не меняется
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Provider лениво загружает документ опций и отдает списки для выпадающих меню.
// Методы доступа не блокируются: пока документ не загружен, они запускают загрузку
// и возвращают пустой список. Ошибки загрузки вызывающим не передаются,
// следующий вызов повторит попытку.
type Provider struct {
	mu      sync.Mutex
	state   State
	data    Document
	waiters []func()
	attempt *attempt

	ctx      context.Context
	baseURL  string
	pagePath string
	fetcher  Fetcher
	log      interfaces.SimpleLogger
}

// attempt одна попытка загрузки. done закрывается после применения результата
// и, при успехе, после вызова всех ожидающих callback'ов.
type attempt struct {
	id   string
	done chan struct{}
	err  error
}

// loadResult результат попытки, который применяется только к внутреннему состоянию
type loadResult struct {
	doc Document
	err error
}

// Option настраивает Provider
type Option func(*Provider)

// WithBaseURL задает адрес сервера (схема и хост). Пустой - относительные адреса.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// WithPagePath задает путь текущей страницы, из которого берется префикс локали
func WithPagePath(pagePath string) Option {
	return func(p *Provider) {
		p.pagePath = pagePath
	}
}

// WithFetcher задает способ получения документа
func WithFetcher(fetcher Fetcher) Option {
	return func(p *Provider) {
		if fetcher != nil {
			p.fetcher = fetcher
		}
	}
}

// WithHTTPClient использует HTTPFetcher с указанным клиентом
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.fetcher = NewHTTPFetcher(client)
	}
}

// WithLogger задает логгер
func WithLogger(log interfaces.SimpleLogger) Option {
	return func(p *Provider) {
		if log != nil {
			p.log = log
		}
	}
}

// WithContext задает контекст, к которому привязаны фоновые загрузки
func WithContext(ctx context.Context) Option {
	return func(p *Provider) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// NewProvider создает Provider в состоянии StateUnloaded с пустым документом
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		state:    StateUnloaded,
		data:     EmptyDocument(),
		ctx:      context.Background(),
		pagePath: "/",
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fetcher == nil {
		p.fetcher = NewHTTPFetcher(nil)
	}
	return p
}

// State текущее состояние загрузки
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Loaded загружен ли документ
func (p *Provider) Loaded() bool {
	return p.State() == StateLoaded
}

// startLocked запускает фоновую загрузку, если документ не загружен и не загружается.
// Вызывается под p.mu. Возвращает текущую попытку или nil, если документ уже загружен.
func (p *Provider) startLocked() *attempt {
	switch p.state {
	case StateLoaded:
		return nil
	case StateLoading:
		return p.attempt
	}

	a := &attempt{id: uuid.NewString(), done: make(chan struct{})}
	p.state = StateLoading
	p.attempt = a

	go func() {
		p.apply(a, p.fetch(a))
	}()
	return a
}

// optionsURL адрес документа. При ошибке разбора используется путь без локали.
func (p *Provider) optionsURL() string {
	target, err := BuildOptionsURL(p.baseURL, p.pagePath)
	if err != nil {
		p.log.Warnf("Адрес опций не построен, используется %s: %v", DefaultOptionsPath, err)
		return fallbackOptionsURL(p.baseURL)
	}
	return target
}

func (p *Provider) fetch(a *attempt) loadResult {
	target := p.optionsURL()
	p.log.Debugf("Загрузка опций (попытка %s): %s", a.id, target)

	body, err := p.fetcher.Fetch(p.ctx, target)
	if err != nil {
		return loadResult{err: fmt.Errorf("загрузка опций %s: %w", target, err)}
	}

	doc, err := ParseDocument(body)
	if err != nil {
		return loadResult{err: fmt.Errorf("разбор опций %s: %w", target, err)}
	}
	return loadResult{doc: doc}
}

// apply переводит состояние: loading -> loaded при успехе, loading -> unloaded при ошибке.
// Ожидающие callback'и снимаются целиком под блокировкой и вызываются уже без нее.
func (p *Provider) apply(a *attempt, res loadResult) {
	p.mu.Lock()
	a.err = res.err
	if res.err != nil {
		p.state = StateUnloaded
		p.attempt = nil
		p.mu.Unlock()
		close(a.done)
		p.log.Warnf("Опции не загружены (попытка %s), повтор при следующем обращении: %v", a.id, res.err)
		return
	}

	p.data = res.doc
	p.state = StateLoaded
	p.attempt = nil
	waiters := p.waiters
	p.waiters = nil
	p.mu.Unlock()

	p.log.Infof("Опции загружены (попытка %s): систем по областям %d, систем с проблемами %d, областей с проблемами %d",
		a.id, len(res.doc.Sistema), len(res.doc.ProblemaBySystem), len(res.doc.ProblemaByArea))

	for _, fn := range waiters {
		p.invoke(fn)
	}
	close(a.done)
}

// invoke вызывает callback, паника callback'а логируется и не выходит наружу
func (p *Provider) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warnf("Callback готовности опций завершился паникой: %v", r)
		}
	}()
	fn()
}

// Load загружает документ и ждет результата. Если загрузка уже идет, ждет ее.
// ctx ограничивает только ожидание: фоновый запрос продолжается и применит результат.
func (p *Provider) Load(ctx context.Context) error {
	p.mu.Lock()
	a := p.startLocked()
	p.mu.Unlock()
	if a == nil {
		return nil
	}

	select {
	case <-a.done:
		return a.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnReady вызывает cb сразу, если документ загружен, иначе ставит его в очередь
// и запускает загрузку. Очередь выполняется один раз, в порядке регистрации.
func (p *Provider) OnReady(cb func()) {
	if cb == nil {
		return
	}

	p.mu.Lock()
	if p.state == StateLoaded {
		p.mu.Unlock()
		p.invoke(cb)
		return
	}
	p.waiters = append(p.waiters, cb)
	p.startLocked()
	p.mu.Unlock()
}

// document возвращает документ и признак загрузки. Незагруженный документ запускает загрузку.
func (p *Provider) document() (Document, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateLoaded {
		p.startLocked()
		return Document{}, false
	}
	return p.data, true
}

// get список категории для области с нормализацией области
func (p *Provider) get(category, area string) ([]string, bool) {
	doc, ok := p.document()
	if !ok {
		return nil, false
	}
	return doc.Category(category)[NormalizeArea(area)], true
}

// SistemaOptions системы области, отсортированные
func (p *Provider) SistemaOptions(area string) []string {
	values, ok := p.get(CategorySistema, area)
	if !ok {
		return []string{}
	}
	return SortAlpha(values)
}

// ProblemaOptions проблемы области, отсортированные, "Outro..." последним
func (p *Provider) ProblemaOptions(area string) []string {
	values, ok := p.get(CategoryProblemaByArea, area)
	if !ok {
		return []string{}
	}
	return SortWithSentinelLast(values)
}

// ProblemaOptionsBySistema проблемы системы. Название системы не нормализуется.
func (p *Provider) ProblemaOptionsBySistema(sistema string) []string {
	doc, ok := p.document()
	if !ok {
		return []string{}
	}
	return SortWithSentinelLast(doc.ProblemaBySystem[sistema])
}

// AllProblemaOptions проблемы всех систем без повторов
func (p *Provider) AllProblemaOptions() []string {
	doc, ok := p.document()
	if !ok {
		return []string{}
	}
	return SortWithSentinelLast(union(doc.ProblemaBySystem))
}

// AllSistemaOptions системы всех областей без повторов
func (p *Provider) AllSistemaOptions() []string {
	doc, ok := p.document()
	if !ok {
		return []string{}
	}
	return SortAlpha(union(doc.Sistema))
}
