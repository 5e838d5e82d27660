package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config параметры подключения к postgres
type Config struct {
	Host     string
	Port     string
	UserName string
	DBName   string
	Password string
	SSLMode  string

	MaxOpenConns int           // 0 - без ограничения
	PingTimeout  time.Duration // 0 - 5 секунд
}

// DSN строка подключения. Пустой порт не указывается.
func (c Config) DSN() string {
	parts := []string{"host=" + c.Host}
	if c.Port != "" {
		parts = append(parts, "port="+c.Port)
	}
	parts = append(parts,
		"user="+c.UserName,
		"dbname="+c.DBName,
		"password="+c.Password,
	)
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	parts = append(parts, "sslmode="+sslMode)
	return strings.Join(parts, " ")
}

// NewDatabase открывает подключение и проверяет его ping'ом
func NewDatabase(conf Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(conf.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД %s: %w", conf.Host, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}

	timeout := conf.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("БД %s не отвечает: %w", conf.Host, err)
	}

	return db, nil
}
