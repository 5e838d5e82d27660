package db

import (
	"context"
	"fmt"

	"ocorrenciaapp/internal/model"

	"gorm.io/gorm"
)

// OptionRepository чтение опций из таблицы option_items
type OptionRepository struct {
	db *gorm.DB
}

// OptionItems возвращает все опции, включая неактивные: неактивная система
// все равно нужна, чтобы отбросить ее проблемы при сборке документа.
func (r *OptionRepository) OptionItems(ctx context.Context) ([]model.OptionItem, error) {
	var items []model.OptionItem
	err := r.db.WithContext(ctx).
		Order("category").
		Order("area").
		Order("sort_order").
		Order("label").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("не удалось получить опции: %w", err)
	}
	return items, nil
}
