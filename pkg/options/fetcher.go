package options

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// DefaultTimeout таймаут HTTP клиента по умолчанию
const DefaultTimeout = 30 * time.Second

// Fetcher получает тело документа опций по адресу
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc адаптер обычной функции к Fetcher
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// StatusError сервер ответил статусом вне 2xx
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("сервер опций %s ответил статусом %d", e.URL, e.StatusCode)
}

// HTTPFetcher выполняет GET запрос с cookie той же сессии
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPClient создает клиент с cookie jar, чтобы запросы шли с учетными данными сессии
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	if jar, err := cookiejar.New(nil); err == nil {
		client.Jar = jar
	}
	return client
}

// NewHTTPFetcher создает HTTPFetcher. nil клиент заменяется NewHTTPClient(DefaultTimeout).
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	return &HTTPFetcher{client: client}
}

// Fetch возвращает тело ответа. Статус вне 2xx - *StatusError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать запрос: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить запрос: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать тело ответа: %w", err)
	}
	return body, nil
}
