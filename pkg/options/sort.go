package options

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sentinel значение "Другое...", которое всегда стоит последним в списке проблем
const Sentinel = "Outro..."

// Области, которые распознаются без учета регистра
const (
	AreaIMMO      = "IMMO"
	AreaDiagnosis = "Diagnosis"
	AreaDevice    = "Device"
)

// NormalizeArea приводит известные области к каноничному ключу.
// Остальные значения возвращаются как есть.
func NormalizeArea(area string) string {
	switch strings.ToUpper(area) {
	case "IMMO":
		return AreaIMMO
	case "DIAGNOSIS":
		return AreaDiagnosis
	case "DEVICE":
		return AreaDevice
	}
	return area
}

// SortAlpha убирает пустые значения и сортирует по pt-BR без учета регистра и диакритики.
// Равные при таком сравнении значения сохраняют исходный порядок.
func SortAlpha(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}

	// collate.Collator хранит внутренние буферы, поэтому свой на каждый вызов
	c := collate.New(language.BrazilianPortuguese, collate.Loose)
	slices.SortStableFunc(result, c.CompareString)
	return result
}

// SortWithSentinelLast сортирует как SortAlpha и переносит Sentinel в конец.
// Sentinel появляется в результате ровно один раз и только если был во входных данных.
func SortWithSentinelLast(values []string) []string {
	sorted := SortAlpha(values)
	result := make([]string, 0, len(sorted))
	found := false
	for _, v := range sorted {
		if v == Sentinel {
			found = true
			continue
		}
		result = append(result, v)
	}
	if found {
		result = append(result, Sentinel)
	}
	return result
}

// union объединяет все списки категории без повторов.
// Ключи обходятся в отсортированном порядке, чтобы результат был одинаковым между вызовами.
func union(lists map[string][]string) []string {
	keys := make([]string, 0, len(lists))
	for k := range lists {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, k := range keys {
		for _, v := range lists[k] {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}
