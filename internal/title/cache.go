package title

import (
	"container/list"
	"sync"
)

// DefaultCacheMaxSize é o número máximo de títulos guardados por padrão
const DefaultCacheMaxSize = 1000

type cacheEntry struct {
	url   string
	title string
}

// Cache guarda títulos por URL em memória. Ao passar do limite remove a
// entrada inserida há mais tempo (FIFO); leituras não alteram a ordem.
type Cache struct {
	maxSize int
	mu      sync.Mutex
	items   map[string]*list.Element
	order   *list.List
}

// NewCache cria um cache com o limite informado
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheMaxSize
	}
	return &Cache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Get busca o título de uma URL
func (c *Cache) Get(url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.items[url]; found {
		return element.Value.(*cacheEntry).title, true
	}
	return "", false
}

// Set grava o título. Reescrever uma URL existente mantém sua posição na fila.
func (c *Cache) Set(url, title string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.items[url]; found {
		element.Value.(*cacheEntry).title = title
		return
	}

	c.items[url] = c.order.PushBack(&cacheEntry{url: url, title: title})

	if c.order.Len() > c.maxSize {
		c.evictOldest()
	}
}

// Len retorna o número de entradas
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) evictOldest() {
	element := c.order.Front()
	if element == nil {
		return
	}
	c.order.Remove(element)
	delete(c.items, element.Value.(*cacheEntry).url)
}
