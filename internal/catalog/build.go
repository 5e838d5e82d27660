package catalog

import (
	"sort"

	"ocorrenciaapp/internal/model"
	"ocorrenciaapp/pkg/options"
)

// BuildDocument собирает документ опций из строк option_items.
//
// Учитываются только активные опции. Системы группируются по области,
// проблемы - по подписи родительской системы и по области. Внутри группы
// порядок задается полем Order, затем подписью. Проблема без родителя или с
// неактивным родителем попадает только в PROBLEMA_BY_AREA. Повторы внутри
// группы отбрасываются, остается первое вхождение.
func BuildDocument(items []model.OptionItem) options.Document {
	doc := options.EmptyDocument()

	byID := make(map[uint]model.OptionItem, len(items))
	active := make([]model.OptionItem, 0, len(items))
	for _, item := range items {
		byID[item.ID] = item
		if item.Active && item.Label != "" {
			active = append(active, item)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Order != active[j].Order {
			return active[i].Order < active[j].Order
		}
		return active[i].Label < active[j].Label
	})

	for _, item := range active {
		switch item.Category {
		case model.CategorySistema:
			appendUnique(doc.Sistema, item.Area, item.Label)
		case model.CategoryProblema:
			appendUnique(doc.ProblemaByArea, item.Area, item.Label)
			if item.ParentID == nil {
				continue
			}
			parent, ok := byID[*item.ParentID]
			if !ok || !parent.Active || parent.Category != model.CategorySistema {
				continue
			}
			appendUnique(doc.ProblemaBySystem, parent.Label, item.Label)
		}
	}

	return doc
}

func appendUnique(group map[string][]string, key, value string) {
	for _, v := range group[key] {
		if v == value {
			return
		}
	}
	group[key] = append(group[key], value)
}
