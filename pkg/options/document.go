package options

import (
	"errors"

	"github.com/tidwall/gjson"
)

// Категории документа опций
const (
	CategorySistema          = "SISTEMA"
	CategoryProblemaBySystem = "PROBLEMA_BY_SYSTEM"
	CategoryProblemaByArea   = "PROBLEMA_BY_AREA"
)

// ErrInvalidJSON тело ответа не разбирается как JSON
var ErrInvalidJSON = errors.New("тело ответа не является корректным JSON")

// Document документ опций, который отдает сервер.
// Ключи SISTEMA и PROBLEMA_BY_AREA - области, ключи PROBLEMA_BY_SYSTEM - названия систем.
type Document struct {
	Sistema          map[string][]string `json:"SISTEMA"`
	ProblemaBySystem map[string][]string `json:"PROBLEMA_BY_SYSTEM"`
	ProblemaByArea   map[string][]string `json:"PROBLEMA_BY_AREA"`
}

// EmptyDocument документ со всеми тремя пустыми категориями
func EmptyDocument() Document {
	return Document{
		Sistema:          make(map[string][]string),
		ProblemaBySystem: make(map[string][]string),
		ProblemaByArea:   make(map[string][]string),
	}
}

// Category возвращает категорию по имени. Неизвестное имя - nil.
func (d Document) Category(name string) map[string][]string {
	switch name {
	case CategorySistema:
		return d.Sistema
	case CategoryProblemaBySystem:
		return d.ProblemaBySystem
	case CategoryProblemaByArea:
		return d.ProblemaByArea
	}
	return nil
}

// ParseDocument разбирает тело ответа сервера.
// Форма не проверяется: ложное значение (null, false, 0, "") дает пустой документ,
// отсутствующая категория или категория не-объект - пустую карту,
// значения не-массивы пропускаются, ложные элементы массивов становятся пустой строкой
// и потом отбрасываются сортировкой.
func ParseDocument(body []byte) (Document, error) {
	if !gjson.ValidBytes(body) {
		return Document{}, ErrInvalidJSON
	}

	doc := EmptyDocument()
	root := gjson.ParseBytes(body)
	if isFalsy(root) {
		return doc, nil
	}

	doc.Sistema = parseCategory(root.Get(CategorySistema))
	doc.ProblemaBySystem = parseCategory(root.Get(CategoryProblemaBySystem))
	doc.ProblemaByArea = parseCategory(root.Get(CategoryProblemaByArea))
	return doc, nil
}

func parseCategory(category gjson.Result) map[string][]string {
	result := make(map[string][]string)
	if !category.IsObject() {
		return result
	}

	category.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			return true
		}
		items := value.Array()
		list := make([]string, 0, len(items))
		for _, item := range items {
			if isFalsy(item) {
				list = append(list, "")
				continue
			}
			list = append(list, item.String())
		}
		result[key.String()] = list
		return true
	})
	return result
}

func isFalsy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return v.Num == 0
	case gjson.String:
		return v.Str == ""
	}
	return false
}
