package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ocorrenciaapp/internal/config"
	"ocorrenciaapp/internal/infrastructure/logger"
	"ocorrenciaapp/pkg/options"

	"github.com/gorilla/mux"
)

// DocumentSource отдает актуальный документ опций
type DocumentSource interface {
	Document(ctx context.Context) (options.Document, error)
}

// WebApp HTTP сервер документа опций
type WebApp struct {
	Router  *mux.Router // Маршрутизатор
	conf    config.ServerConfig
	source  DocumentSource
	limiter *RateLimiter
}

// NewWebApp создает веб приложение с маршрутами
func NewWebApp(source DocumentSource, conf config.ServerConfig) *WebApp {
	app := &WebApp{
		conf:    conf,
		source:  source,
		limiter: NewRateLimiter(conf.RateLimit, conf.RateBurst),
	}
	app.Router = app.SetRoutes()
	return app
}

// HandleUpdates запускает HTTP сервер и блокируется до его остановки
func (app *WebApp) HandleUpdates() error {
	addr := app.conf.APPIP + ":" + app.conf.APPPORT

	msg := "Сервер опций запущен (" + addr + ")"
	if app.conf.IsTestMode {
		msg += ". ВКЛЮЧЕН ТЕСТОВЫЙ ЗАПУСК"
	}
	logger.Info(msg)

	server := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	}
	return nil
}
