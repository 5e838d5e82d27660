package db

import (
	"ocorrenciaapp/internal/config"
	"ocorrenciaapp/internal/infrastructure/logger"
	"ocorrenciaapp/internal/model"
	"ocorrenciaapp/pkg/db"

	"gorm.io/gorm"
)

// Open подключается к БД опций. При conf.Migrate создает таблицу option_items.
func Open(conf config.DataBaseConfig) (*OptionRepository, error) {
	conn, err := db.NewDatabase(db.Config{
		Host:     conf.Host,
		Port:     conf.Port,
		UserName: conf.UserName,
		DBName:   conf.DBName,
		Password: conf.Password,
		SSLMode:  conf.SSLMode,
	})
	if err != nil {
		return nil, err
	}

	if conf.Migrate {
		if err := conn.AutoMigrate(&model.OptionItem{}); err != nil {
			return nil, err
		}
		logger.Info("Таблица option_items проверена")
	}

	return NewOptionRepository(conn), nil
}

// NewOptionRepository оборачивает готовое подключение
func NewOptionRepository(conn *gorm.DB) *OptionRepository {
	return &OptionRepository{db: conn}
}
