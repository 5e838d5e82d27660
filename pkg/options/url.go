package options

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultOptionsPath путь к документу опций без префикса локали
const DefaultOptionsPath = "/options/"

// BuildOptionsURL строит адрес документа опций.
// Первый непустой сегмент pagePath считается префиксом локали (pt-br, en, ...):
// "/pt-br/ocorrencia/" -> "/pt-br/options/", "/" -> "/options/".
// Путь разрешается относительно baseURL; пустой baseURL дает относительный путь.
func BuildOptionsURL(baseURL, pagePath string) (string, error) {
	page, err := url.Parse(pagePath)
	if err != nil {
		return "", fmt.Errorf("не удалось разобрать путь страницы %q: %w", pagePath, err)
	}

	target := DefaultOptionsPath
	if locale := firstSegment(page.Path); locale != "" {
		target = "/" + url.PathEscape(locale) + DefaultOptionsPath
	}

	return resolve(baseURL, target)
}

// fallbackOptionsURL адрес без префикса локали. Используется, если BuildOptionsURL не справился.
func fallbackOptionsURL(baseURL string) string {
	target, err := resolve(baseURL, DefaultOptionsPath)
	if err != nil {
		return DefaultOptionsPath
	}
	return target
}

func resolve(baseURL, target string) (string, error) {
	if baseURL == "" {
		return target, nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("не удалось разобрать базовый адрес %q: %w", baseURL, err)
	}
	ref, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("не удалось разобрать путь %q: %w", target, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func firstSegment(path string) string {
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			return part
		}
	}
	return ""
}
