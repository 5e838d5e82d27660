package logger

import (
	"io"

	"ocorrenciaapp/internal/config"
	"ocorrenciaapp/pkg/logger"
	"ocorrenciaapp/pkg/logger/interfaces"
)

// Log логгер процесса. До Init ничего не пишет.
var Log interfaces.Logger = logger.Nop()

// Init создает логгер процесса по конфигурации, консольный вывод в stdout
func Init(conf config.LoggerConfig) error {
	return InitWithOutput(conf, nil)
}

// InitWithOutput как Init, но консольный вывод идет в out. nil - stdout.
func InitWithOutput(conf config.LoggerConfig, out io.Writer) error {
	l, err := logger.New(logger.Config{
		Level:       conf.Level,
		Dir:         conf.LogDir,
		FilePattern: conf.FilePattern,
		TimeFormat:  conf.TimeFormat,
		Output:      out,
	})
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Методы без форматирования
func Info(args ...interface{})  { Log.Info(args...) }
func Error(args ...interface{}) { Log.Error(args...) }
func Debug(args ...interface{}) { Log.Debug(args...) }
func Warn(args ...interface{})  { Log.Warn(args...) }

// Методы с форматированием
func Infof(format string, args ...interface{})  { Log.Infof(format, args...) }
func Errorf(format string, args ...interface{}) { Log.Errorf(format, args...) }
func Debugf(format string, args ...interface{}) { Log.Debugf(format, args...) }
func Warnf(format string, args ...interface{})  { Log.Warnf(format, args...) }
