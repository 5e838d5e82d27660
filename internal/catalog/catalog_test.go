package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ocorrenciaapp/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func sampleItems() []model.OptionItem {
	return []model.OptionItem{
		{ID: 1, Area: model.AreaIMMO, Category: model.CategorySistema, Label: "Beta", Order: 2, Active: true},
		{ID: 2, Area: model.AreaIMMO, Category: model.CategorySistema, Label: "Alpha", Order: 1, Active: true},
		{ID: 3, Area: model.AreaDiagnosis, Category: model.CategorySistema, Label: "Motor", Active: true},
		{ID: 4, Area: model.AreaDiagnosis, Category: model.CategorySistema, Label: "Antigo", Active: false},
		{ID: 10, Area: model.AreaIMMO, Category: model.CategoryProblema, Label: "Outro...", Order: 9, Active: true, ParentID: uintPtr(1)},
		{ID: 11, Area: model.AreaIMMO, Category: model.CategoryProblema, Label: "Sem chave", Active: true, ParentID: uintPtr(1)},
		{ID: 12, Area: model.AreaIMMO, Category: model.CategoryProblema, Label: "Sem chave", Active: true, ParentID: uintPtr(2)},
		{ID: 13, Area: model.AreaDiagnosis, Category: model.CategoryProblema, Label: "Falha", Active: true, ParentID: uintPtr(3)},
		{ID: 14, Area: model.AreaDiagnosis, Category: model.CategoryProblema, Label: "Legado", Active: true, ParentID: uintPtr(4)},
		{ID: 15, Area: model.AreaDevice, Category: model.CategoryProblema, Label: "Sem energia", Active: true},
		{ID: 16, Area: model.AreaDevice, Category: model.CategoryProblema, Label: "Desligado", Active: false},
	}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(sampleItems())

	assert.Equal(t, map[string][]string{
		"IMMO":      {"Alpha", "Beta"},
		"Diagnosis": {"Motor"},
	}, doc.Sistema)

	assert.Equal(t, map[string][]string{
		"Beta":  {"Sem chave", "Outro..."},
		"Alpha": {"Sem chave"},
		"Motor": {"Falha"},
	}, doc.ProblemaBySystem)

	assert.Equal(t, map[string][]string{
		"IMMO":      {"Sem chave", "Outro..."},
		"Diagnosis": {"Falha", "Legado"},
		"Device":    {"Sem energia"},
	}, doc.ProblemaByArea)
}

func TestBuildDocumentEmpty(t *testing.T) {
	doc := BuildDocument(nil)
	assert.NotNil(t, doc.Sistema)
	assert.Empty(t, doc.Sistema)
	assert.Empty(t, doc.ProblemaBySystem)
	assert.Empty(t, doc.ProblemaByArea)
}

type countingSource struct {
	calls int
	items []model.OptionItem
	err   error
}

func (s *countingSource) OptionItems(ctx context.Context) ([]model.OptionItem, error) {
	s.calls++
	return s.items, s.err
}

func TestCatalogCachesDocument(t *testing.T) {
	source := &countingSource{items: sampleItems()}
	c := New(source, time.Minute)

	first, err := c.Document(context.Background())
	require.NoError(t, err)
	second, err := c.Document(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls)

	c.Invalidate()
	_, err = c.Document(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestCatalogWithoutTTLRebuilds(t *testing.T) {
	source := &countingSource{items: sampleItems()}
	c := New(source, 0)

	for i := 0; i < 3; i++ {
		_, err := c.Document(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, source.calls)
}

func TestCatalogDoesNotCacheErrors(t *testing.T) {
	source := &countingSource{err: errors.New("db fora do ar")}
	c := New(source, time.Minute)

	_, err := c.Document(context.Background())
	assert.Error(t, err)

	source.err = nil
	source.items = sampleItems()
	doc, err := c.Document(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, doc.Sistema["IMMO"])
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	content := `[
		{"id": 1, "area": "IMMO", "category": "SISTEMA", "label": "Beta"},
		{"id": 2, "area": "IMMO", "category": "PROBLEMA", "label": "Sem chave", "parent_id": 1},
		{"id": 3, "area": "IMMO", "category": "PROBLEMA", "label": "Velho", "parent_id": 1, "active": false}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	items, err := FileSource{Path: path}.OptionItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].Active)
	assert.Equal(t, uint(1), *items[1].ParentID)
	assert.False(t, items[2].Active)

	doc := BuildDocument(items)
	assert.Equal(t, []string{"Sem chave"}, doc.ProblemaBySystem["Beta"])
}

func TestFileSourceErrors(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}.OptionItems(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0600))
	_, err = FileSource{Path: path}.OptionItems(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = FileSource{Path: path}.OptionItems(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
