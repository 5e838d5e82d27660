package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ocorrenciaapp/internal/catalog"
	"ocorrenciaapp/internal/config"
	"ocorrenciaapp/internal/infrastructure/db"
	"ocorrenciaapp/internal/infrastructure/logger"
	"ocorrenciaapp/internal/web"
)

func main() {
	envFile := os.Getenv("OCORRENCIA_ENV_FILE")
	if envFile == "" {
		envFile = config.DefaultEnvFile
	}
	HandleFatalError(config.Init(envFile))

	if config.File.IsTestMode {
		config.File.LoggerConfig.Level = "debug"
	}
	HandleFatalError(logger.Init(config.File.LoggerConfig))

	source, err := openSource(config.File)
	HandleFatalError(err)

	options := catalog.New(source, config.File.OptionsTTL)
	go invalidateOnHangup(options)

	app := web.NewWebApp(options, config.File.ServerConfig)
	HandleFatalError(app.HandleUpdates())
}

// openSource файл опций, если он задан, иначе БД
func openSource(conf *config.Config) (catalog.Source, error) {
	if conf.OptionsFile != "" {
		logger.Info("Опции читаются из файла ", conf.OptionsFile)
		return catalog.FileSource{Path: conf.OptionsFile}, nil
	}
	if !conf.HasDatabase() {
		return nil, errors.New("не задан источник опций: APP_OPTIONS_FILE или DBHOST")
	}
	logger.Info("Опции читаются из БД ", conf.DataBaseConfig.Host)
	return db.Open(conf.DataBaseConfig)
}

// invalidateOnHangup сбрасывает кэш документа по SIGHUP
func invalidateOnHangup(c *catalog.Catalog) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	for range hup {
		c.Invalidate()
		logger.Info("Кэш опций сброшен по SIGHUP")
	}
}

// HandleFatalError если err ошибка, то логгирует ее и завершает процесс.
// Логгер может быть еще не создан, поэтому ошибка дублируется в stderr.
func HandleFatalError(err error) {
	if err != nil {
		logger.Error("Критическая ошибка: ", err)
		fmt.Fprintln(os.Stderr, "Критическая ошибка:", err)
		os.Exit(1)
	}
}
