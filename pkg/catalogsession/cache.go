package catalogsession

import (
	"sync"

	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/catalogclient"
)

// CacheEntry — слепок экрана каталога на момент ухода с него:
// запрос, всё накопленное, серверный total и позиция прокрутки.
type CacheEntry struct {
	Query  catalogclient.ListQuery
	Items  []catalogclient.AdPreview
	Total  int
	Offset int
	Scroll int
}

// ViewCache — хранилище слепков межэкранной навигации, один слот на
// тип каталога. Передаётся сессии явно (а не глобальной переменной),
// чтобы тесты не делили скрытое состояние.
//
// Слот перезаписывается целиком при каждом уходе с экрана и читается
// неразрушающе при возврате; Clear — явная инвалидация (pull-to-refresh).
// Кэш живёт только в памяти процесса и не переживает перезапуск.
type ViewCache struct {
	mu      sync.Mutex
	entries map[catalogclient.CatalogType]CacheEntry
}

func NewViewCache() *ViewCache {
	return &ViewCache{
		entries: make(map[catalogclient.CatalogType]CacheEntry),
	}
}

// Save безусловно перезаписывает слот каталога.
func (c *ViewCache) Save(catalog catalogclient.CatalogType, entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[catalog] = entry
}

// Load читает слот, не очищая его. Второй Mount без промежуточного
// Leave увидит тот же слепок — это принято: запись происходит только
// при уходе с экрана.
func (c *ViewCache) Load(catalog catalogclient.CatalogType) (CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[catalog]
	return entry, ok
}

// Clear удаляет слот: следующий Mount пойдёт в сеть с нулевого смещения.
func (c *ViewCache) Clear(catalog catalogclient.CatalogType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, catalog)
}
