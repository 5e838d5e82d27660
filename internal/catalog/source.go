package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"ocorrenciaapp/internal/model"
)

// Source откуда берутся строки опций
type Source interface {
	OptionItems(ctx context.Context) ([]model.OptionItem, error)
}

// FileSource опции из JSON файла: массив объектов с полями id, area, category,
// label, order, active, parent_id. Отсутствующий active считается true, как в БД.
type FileSource struct {
	Path string
}

type fileItem struct {
	ID       uint   `json:"id"`
	Area     string `json:"area"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Order    uint   `json:"order"`
	Active   *bool  `json:"active"`
	ParentID *uint  `json:"parent_id"`
}

// OptionItems читает файл при каждом вызове. Кэширование - забота Catalog.
func (s FileSource) OptionItems(ctx context.Context) ([]model.OptionItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл опций: %w", err)
	}

	var raw []fileItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ошибка при разборе файла опций %s: %w", s.Path, err)
	}

	items := make([]model.OptionItem, 0, len(raw))
	for _, r := range raw {
		active := true
		if r.Active != nil {
			active = *r.Active
		}
		items = append(items, model.OptionItem{
			ID:       r.ID,
			Area:     r.Area,
			Category: r.Category,
			Label:    r.Label,
			Order:    r.Order,
			Active:   active,
			ParentID: r.ParentID,
		})
	}
	return items, nil
}
