package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ocorrenciaapp/pkg/logger/interfaces"

	"github.com/rs/zerolog"
)

// Config конфигурация логгера
// Level - минимальный уровень (debug, info, warn, error)
// Dir - директория для файлов логов; пустая строка - только stdout
// FilePattern - шаблон имени файла, %s заменяется временем запуска
// TimeFormat - формат времени в имени файла
// Output - если задан, используется вместо stdout (удобно в тестах)
type Config struct {
	Level       string
	Dir         string
	FilePattern string
	TimeFormat  string
	Output      io.Writer
}

// ZerologLogger реализация interfaces.Logger на zerolog
type ZerologLogger struct {
	log zerolog.Logger
}

// openLogFile открывает файл лога текущего запуска
func openLogFile(cfg Config) (io.Writer, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию для логов: %w", err)
	}

	pattern := cfg.FilePattern
	if pattern == "" {
		pattern = "ocorrencia_%s.log"
	}
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = "2006-01-02_15-04-05"
	}

	path := filepath.Join(cfg.Dir, fmt.Sprintf(pattern, time.Now().Format(timeFormat)))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл логов: %w", err)
	}
	return file, nil
}

// ParseLevel переводит строку уровня в zerolog.Level. Пустая строка - info.
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("неизвестный уровень логирования %q: %w", level, err)
	}
	return lvl, nil
}

// New создает логгер по конфигурации
func New(cfg Config) (interfaces.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var writer io.Writer = os.Stdout
	if cfg.Output != nil {
		writer = cfg.Output
	}

	if cfg.Dir != "" {
		file, err := openLogFile(cfg)
		if err != nil {
			return nil, err
		}
		writer = io.MultiWriter(file, writer)
	}

	return &ZerologLogger{
		log: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}, nil
}

// Nop логгер, который ничего не пишет
func Nop() interfaces.Logger {
	return &ZerologLogger{log: zerolog.Nop()}
}

func (l *ZerologLogger) Print(v ...interface{}) {
	l.Info(v...)
}

func (l *ZerologLogger) Printf(format string, v ...interface{}) {
	l.Infof(format, v...)
}

func (l *ZerologLogger) Println(v ...interface{}) {
	l.Info(v...)
}

func (l *ZerologLogger) Info(args ...interface{}) {
	l.log.Info().Msg(fmt.Sprint(args...))
}

func (l *ZerologLogger) Error(args ...interface{}) {
	l.log.Error().Msg(fmt.Sprint(args...))
}

func (l *ZerologLogger) Debug(args ...interface{}) {
	l.log.Debug().Msg(fmt.Sprint(args...))
}

func (l *ZerologLogger) Warn(args ...interface{}) {
	l.log.Warn().Msg(fmt.Sprint(args...))
}

func (l *ZerologLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l *ZerologLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

// WithFields возвращает дочерний логгер с полями
func (l *ZerologLogger) WithFields(fields map[string]interface{}) interfaces.Logger {
	ctx := l.log.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &ZerologLogger{log: ctx.Logger()}
}
