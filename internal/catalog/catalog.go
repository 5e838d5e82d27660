package catalog

import (
	"context"
	"time"

	"ocorrenciaapp/internal/infrastructure/logger"
	"ocorrenciaapp/pkg/options"

	gocache "github.com/patrickmn/go-cache"
)

const documentKey = "document"

// Catalog отдает собранный документ опций и держит его в кэше ttl
type Catalog struct {
	source Source
	ttl    time.Duration
	cache  *gocache.Cache
}

// New создает Catalog. ttl <= 0 - документ собирается на каждый запрос.
func New(source Source, ttl time.Duration) *Catalog {
	cleanup := 2 * ttl
	if ttl <= 0 {
		cleanup = 0
	}
	return &Catalog{
		source: source,
		ttl:    ttl,
		cache:  gocache.New(ttl, cleanup),
	}
}

// Document возвращает документ из кэша или собирает его из источника
func (c *Catalog) Document(ctx context.Context) (options.Document, error) {
	if v, ok := c.cache.Get(documentKey); ok {
		if doc, ok := v.(options.Document); ok {
			return doc, nil
		}
	}

	items, err := c.source.OptionItems(ctx)
	if err != nil {
		return options.Document{}, err
	}

	doc := BuildDocument(items)
	if c.ttl > 0 {
		c.cache.Set(documentKey, doc, gocache.DefaultExpiration)
	}
	logger.Debugf("Документ опций собран из %d строк", len(items))
	return doc, nil
}

// Invalidate сбрасывает кэш, следующий Document соберет документ заново
func (c *Catalog) Invalidate() {
	c.cache.Delete(documentKey)
}
