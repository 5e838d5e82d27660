package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvFile путь к .env относительно cmd/<бинарник>
const DefaultEnvFile = "../../config/ocorrencia/.env"

type Config struct {
	ClientConfig
	ServerConfig
	DataBaseConfig
	LoggerConfig
}

// ClientConfig параметры клиента опций (optionsctl)
type ClientConfig struct {
	BaseURL     string        `envconfig:"OPTIONS_BASE_URL" default:"http://localhost:8080"` // Адрес сервера опций
	PagePath    string        `envconfig:"OPTIONS_PAGE_PATH" default:"/"`                    // Путь страницы, первый сегмент - локаль
	HTTPTimeout time.Duration `envconfig:"OPTIONS_HTTP_TIMEOUT" default:"30s"`               // Таймаут HTTP клиента
}

// ServerConfig параметры сервера опций (optionsd)
type ServerConfig struct {
	APPIP       string        `envconfig:"APP_IP" default:"localhost"`       // IP адрес приложения
	APPPORT     string        `envconfig:"APP_PORT" default:"8080"`          // Порт приложения
	RateLimit   float64       `envconfig:"APP_RATE_LIMIT" default:"5"`       // Запросов в секунду с одного IP. 0 - без ограничения
	RateBurst   int           `envconfig:"APP_RATE_BURST" default:"10"`      // Допустимый всплеск запросов с одного IP
	OptionsTTL  time.Duration `envconfig:"APP_OPTIONS_TTL" default:"5m"`     // Сколько живет собранный документ опций. 0 - собирать на каждый запрос
	OptionsFile string        `envconfig:"APP_OPTIONS_FILE" default:""`      // JSON файл с опциями вместо БД
	IsTestMode  bool          `envconfig:"APP_IS_TEST_MODE" default:"false"` // Тестовый запуск, подробные логи
}

// DataBaseConfig подключение к postgres с таблицей option_items
type DataBaseConfig struct {
	Host     string `envconfig:"DBHOST" default:""` // Пустой хост допустим, если задан APP_OPTIONS_FILE
	Port     string `envconfig:"DBPORT" default:""`
	DBName   string `envconfig:"DBNAME" default:""`
	UserName string `envconfig:"DBUSER" default:""`
	Password string `envconfig:"DBPASS" default:""`
	SSLMode  string `envconfig:"DBSSLMODE" default:"disable"`
	Migrate  bool   `envconfig:"DBMIGRATE" default:"false"` // Выполнить AutoMigrate при старте
}

type LoggerConfig struct {
	LogDir      string `envconfig:"LOG_DIR" default:""`
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat  string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02_15-04-05"`
	FilePattern string `envconfig:"LOG_FILE_PATTERN" default:"ocorrencia_%s.log"`
}

var File *Config

// Load читает .env (если файл есть) и переменные окружения.
// Переменные окружения, заданные до вызова, не перезаписываются значениями из файла.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("не удалось загрузить %s: %w", envFile, err)
		}
	}

	conf := &Config{}
	if err := envconfig.Process("", conf); err != nil {
		return nil, fmt.Errorf("не удалось разобрать переменные окружения: %w", err)
	}
	return conf, nil
}

// Init загружает конфигурацию в File
func Init(envFile string) error {
	conf, err := Load(envFile)
	if err != nil {
		return err
	}
	File = conf
	return nil
}

// HasDatabase задан ли источник опций в БД
func (c *Config) HasDatabase() bool {
	return c.DataBaseConfig.Host != ""
}
